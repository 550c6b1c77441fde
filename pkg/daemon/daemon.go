package daemon

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// Initializer is initialized before services are started. Returning
// an error will cancel the start of daemon services.
type Initializer interface {
	InitializeDaemon() error
}

// Terminator is terminated when the daemon gets a stop signal.
type Terminator interface {
	TerminateDaemon() error
}

// Service is run after the daemon is initialized.
type Service interface {
	Serve(ctx context.Context)
}

// Daemon is a top-level lifecycle manager for a set of services.
type Daemon struct {
	Initializers []Initializer
	Services     []Service
	Terminators  []Terminator
	Context      context.Context

	state  int32
	cancel context.CancelFunc
	errs   chan []error
}

// New builds a daemon from components. Components are sorted into
// initializers, services, and terminators by the interfaces they
// implement; order is preserved within each role.
func New(components ...interface{}) *Daemon {
	d := &Daemon{}
	for _, c := range components {
		if i, ok := c.(Initializer); ok {
			d.Initializers = append(d.Initializers, i)
		}
		if s, ok := c.(Service); ok {
			d.Services = append(d.Services, s)
		}
		if t, ok := c.(Terminator); ok {
			d.Terminators = append(d.Terminators, t)
		}
	}
	return d
}

// Run creates a daemon from components and runs it with a background
// context.
func Run(components ...interface{}) error {
	return New(components...).Run(context.Background())
}

// Run executes the daemon lifecycle.
func (d *Daemon) Run(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&d.state, 0, 1) {
		return errors.New("already running")
	}

	for _, i := range d.Initializers {
		if err := i.InitializeDaemon(); err != nil {
			atomic.StoreInt32(&d.state, 0)
			return err
		}
	}

	if len(d.Services) == 0 {
		atomic.StoreInt32(&d.state, 0)
		return errors.New("no services to run")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	d.Context = ctx
	d.cancel = cancel
	d.errs = make(chan []error)

	go TerminateOnSignal(d)
	go TerminateOnContextDone(d)

	var wg sync.WaitGroup
	for _, service := range d.Services {
		wg.Add(1)
		go func(s Service) {
			s.Serve(d.Context)
			wg.Done()
		}(service)
	}
	wg.Wait()
	errs := <-d.errs
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Terminate cancels the daemon context and calls Terminators in
// reverse order.
func (d *Daemon) Terminate() {
	if d == nil {
		return
	}

	if !atomic.CompareAndSwapInt32(&d.state, 1, 0) {
		return
	}

	if d.cancel != nil {
		d.cancel()
	}
	var errs []error
	for i := len(d.Terminators) - 1; i >= 0; i-- {
		if err := d.Terminators[i].TerminateDaemon(); err != nil {
			errs = append(errs, err)
		}
	}
	if d.errs != nil {
		d.errs <- errs
	}
}

// TerminateOnSignal waits for an interrupt or hangup signal to
// terminate the daemon.
func TerminateOnSignal(d *Daemon) {
	termSigs := make(chan os.Signal, 1)
	signal.Notify(termSigs, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	<-termSigs
	d.Terminate()
}

// TerminateOnContextDone waits for the daemon's context to be
// canceled.
func TerminateOnContextDone(d *Daemon) {
	<-d.Context.Done()
	d.Terminate()
}
