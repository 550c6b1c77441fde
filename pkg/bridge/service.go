// Package bridge provides a QRPC server that lets external processes
// drive the shell: show notifications, read CLI matches, and update
// tray menu items over a unix socket.
package bridge

import (
	"context"
	"os"

	"github.com/manifold/qtalk/libmux/mux"
	"github.com/manifold/qtalk/qrpc"

	"github.com/manifold/appshell/pkg/cli"
	"github.com/manifold/appshell/pkg/misc/logging"
	"github.com/manifold/appshell/pkg/tray/systray"
)

// Service serves the shell bridge API on a unix socket.
type Service struct {
	SocketPath string
	AppID      string
	CLI        *cli.Config
	Tray       *systray.Service
	Log        logging.DebugLogger

	api qrpc.API
	l   mux.Listener
}

func (s *Service) InitializeDaemon() (err error) {
	if s.l, err = mux.ListenUnix(s.SocketPath); err != nil {
		return err
	}

	s.api = qrpc.NewAPI()
	s.api.HandleFunc("notify", s.Notify())
	s.api.HandleFunc("cli-matches", s.CLIMatches())
	s.api.HandleFunc("item-update", s.ItemUpdate())
	s.api.HandleFunc("set-title", s.SetTitle())
	return nil
}

func (s *Service) Serve(ctx context.Context) {
	server := &qrpc.Server{}

	logging.Info(s.Log, "[bridge] unix://"+s.SocketPath)
	if err := server.Serve(s.l, s.api); err != nil {
		logging.Info(s.Log, "[bridge]", err)
	}
	os.Remove(s.SocketPath)
}

func (s *Service) TerminateDaemon() error {
	if s.l != nil {
		s.l.Close()
	}
	os.Remove(s.SocketPath)
	return nil
}
