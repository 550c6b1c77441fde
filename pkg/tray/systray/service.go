package systray

import (
	"context"
	"sync"

	lantern "fyne.io/systray"
	"github.com/spf13/afero"

	"github.com/manifold/appshell/pkg/misc/logging"
	"github.com/manifold/appshell/pkg/tray"
)

// Service owns the native tray run loop and exposes the shared tray
// handle once the tray is ready. When run under the daemon it should
// be listed first so it terminates last; limitation of library used.
// https://github.com/getlantern/systray/issues/47
type Service struct {
	Title   string
	Tooltip string
	Icon    tray.Icon
	Menu    *tray.Menu
	Handler tray.Handler
	Log     logging.DebugLogger
	Fs      afero.Fs

	binding *Binding
	handle  *tray.Handle
	ready   chan struct{}
	quit    sync.Once
}

func (s *Service) InitializeDaemon() error {
	s.binding = NewBinding(s.Fs, func(ev tray.Event) {
		if s.Handler != nil {
			s.Handler(ev)
		}
	})
	s.handle = tray.NewHandle(s.binding, nil, s.Log)
	s.ready = make(chan struct{})
	return nil
}

// Handle returns a clone of the shared tray handle, blocking until
// the native tray is ready.
func (s *Service) Handle() *tray.Handle {
	<-s.ready
	return s.handle.Clone()
}

func (s *Service) Serve(ctx context.Context) {
	go func() {
		<-ctx.Done()
		s.Quit()
	}()
	lantern.Run(s.onReady, nil)
}

func (s *Service) onReady() {
	if s.Title != "" {
		lantern.SetTitle(s.Title)
	}
	if s.Tooltip != "" {
		lantern.SetTooltip(s.Tooltip)
	}
	if s.Icon != nil {
		if err := s.handle.SetIcon(s.Icon); err != nil {
			logging.Debug(s.Log, "systray: set icon:", err)
		}
	}
	if s.Menu != nil {
		if err := s.handle.SetMenu(s.Menu); err != nil {
			logging.Debug(s.Log, "systray: set menu:", err)
		}
	}
	close(s.ready)
}

func (s *Service) TerminateDaemon() error {
	s.Quit()
	return nil
}

// Quit stops the native tray loop.
func (s *Service) Quit() {
	s.quit.Do(lantern.Quit)
}
