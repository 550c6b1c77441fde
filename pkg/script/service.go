package script

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/manifold/appshell/pkg/misc/logging"
	"github.com/manifold/appshell/pkg/tray"
	"github.com/manifold/appshell/pkg/tray/systray"
)

// Service loads the front-end script, feeds it tray events, and
// reloads it when the file changes on disk.
type Service struct {
	Path  string
	AppID string
	Tray  *systray.Service
	Log   logging.DebugLogger
	Fs    afero.Fs

	app    *App
	bind   *Bindings
	events chan tray.Event
}

func (s *Service) InitializeDaemon() error {
	if s.Fs == nil {
		s.Fs = afero.NewOsFs()
	}
	s.bind = NewBindings(s.AppID)
	app, err := Load(s.Fs, s.Path, s.bind)
	if err != nil {
		return err
	}
	s.app = app
	s.events = make(chan tray.Event, 16)

	// installed by the tray service once the native loop is up
	s.Tray.Menu = app.Menu()
	return nil
}

// Deliver queues a tray event for the script. Events are dropped when
// the script is backed up.
func (s *Service) Deliver(ev tray.Event) {
	select {
	case s.events <- ev:
	default:
		logging.Debug(s.Log, "script: event dropped")
	}
}

func (s *Service) Serve(ctx context.Context) {
	handle := s.Tray.Handle()
	s.bind.SetHandle(handle)

	var fileEvents chan fsnotify.Event
	var fileErrors chan error
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Info(s.Log, "script: watch unavailable:", err)
	} else {
		defer watcher.Close()
		// watch the directory; editors replace files on save
		if err := watcher.Add(filepath.Dir(s.Path)); err != nil {
			logging.Info(s.Log, "script: watch unavailable:", err)
		} else {
			fileEvents = watcher.Events
			fileErrors = watcher.Errors
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.events:
			if err := s.app.HandleEvent(ev); err != nil {
				logging.Info(s.Log, "script:", err)
			}
		case fe, ok := <-fileEvents:
			if !ok {
				return
			}
			if fe.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			if filepath.Clean(fe.Name) != filepath.Clean(s.Path) {
				continue
			}
			s.reload(handle)
		case err, ok := <-fileErrors:
			if !ok {
				return
			}
			logging.Debug(s.Log, "script: watcher:", err)
		}
	}
}

// reload recompiles the script and installs its menu. On any failure
// the running script and its menu stay authoritative.
func (s *Service) reload(handle *tray.Handle) {
	app, err := Load(s.Fs, s.Path, s.bind)
	if err != nil {
		logging.Info(s.Log, "script: reload:", err)
		return
	}
	if err := handle.SetMenu(app.Menu()); err != nil {
		logging.Info(s.Log, "script: reload menu:", err)
		return
	}
	s.app = app
	logging.Info(s.Log, "script: reloaded", s.Path)
}
