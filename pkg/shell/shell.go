// Package shell assembles a desktop application shell: the native
// tray, an optional scripted front-end, and the external bridge, all
// run under one daemon.
package shell

import (
	"context"
	"os"
	"os/user"
	"path/filepath"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/afero"

	"github.com/manifold/appshell/pkg/bridge"
	"github.com/manifold/appshell/pkg/cli"
	"github.com/manifold/appshell/pkg/daemon"
	zaplog "github.com/manifold/appshell/pkg/logging/zap"
	"github.com/manifold/appshell/pkg/misc/logging"
	"github.com/manifold/appshell/pkg/script"
	"github.com/manifold/appshell/pkg/tray"
	"github.com/manifold/appshell/pkg/tray/systray"
)

// Options configure a shell.
type Options struct {
	// AppID identifies the application, usually in reverse-DNS form.
	// It tags notifications on platforms that require a sender
	// identity.
	AppID string

	Title   string
	Tooltip string
	Icon    tray.Icon

	// Menu is the static tray menu. When ScriptPath is set the
	// script's declared menu replaces it.
	Menu *tray.Menu

	// ScriptPath names a tengo front-end script to run.
	ScriptPath string

	// CLI declares the argument schema served over the bridge.
	CLI *cli.Config

	// Handler receives tray events, alongside the script if one is
	// running.
	Handler tray.Handler

	// SocketPath is where the bridge listens. Defaults to
	// ~/.appshell/shell.sock.
	SocketPath string

	Debug  bool
	Logger logging.DebugLogger
	Fs     afero.Fs
}

// Shell is an assembled application shell.
type Shell struct {
	opts   Options
	daemon *daemon.Daemon
	tray   *systray.Service
	script *script.Service
}

// New assembles a shell from options. Nothing starts until Run.
func New(opts Options) (*Shell, error) {
	log := opts.Logger
	if log == nil {
		log = zaplog.NewLogger(opts.Debug)
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	socketPath := opts.SocketPath
	if socketPath == "" {
		p, err := defaultSocketPath()
		if err != nil {
			return nil, err
		}
		socketPath = p
	}
	if err := os.MkdirAll(filepath.Dir(socketPath), 0700); err != nil {
		return nil, err
	}

	sh := &Shell{opts: opts}

	sh.tray = &systray.Service{
		Title:   opts.Title,
		Tooltip: opts.Tooltip,
		Icon:    opts.Icon,
		Menu:    opts.Menu,
		Handler: sh.dispatch,
		Log:     log,
		Fs:      fs,
	}

	// this must be first so it terminates last. limitation of library used.
	// https://github.com/getlantern/systray/issues/47
	components := []interface{}{sh.tray}

	if opts.ScriptPath != "" {
		sh.script = &script.Service{
			Path:  opts.ScriptPath,
			AppID: opts.AppID,
			Tray:  sh.tray,
			Log:   log,
			Fs:    fs,
		}
		components = append(components, sh.script)
	}

	components = append(components, &bridge.Service{
		SocketPath: socketPath,
		AppID:      opts.AppID,
		CLI:        opts.CLI,
		Tray:       sh.tray,
		Log:        log,
	})

	sh.daemon = daemon.New(components...)
	return sh, nil
}

// dispatch fans one tray event out to the script and the caller's
// handler.
func (s *Shell) dispatch(ev tray.Event) {
	if s.script != nil {
		s.script.Deliver(ev)
	}
	if s.opts.Handler != nil {
		s.opts.Handler(ev)
	}
}

// Run starts the shell and blocks until it terminates.
func (s *Shell) Run(ctx context.Context) error {
	return s.daemon.Run(ctx)
}

// Tray returns a clone of the shared tray handle, blocking until the
// native tray is ready.
func (s *Shell) Tray() *tray.Handle {
	return s.tray.Handle()
}

// Terminate stops the shell.
func (s *Shell) Terminate() {
	s.daemon.Terminate()
}

// OpenExternal opens a URL or file path with the platform handler.
func OpenExternal(target string) error {
	return open.Run(target)
}

func defaultSocketPath() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(u.HomeDir, ".appshell", "shell.sock"), nil
}
