package bridge

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/manifold/qtalk/qrpc"

	"github.com/manifold/appshell/pkg/cli"
	"github.com/manifold/appshell/pkg/misc/logging"
	"github.com/manifold/appshell/pkg/notify"
	"github.com/manifold/appshell/pkg/tray"
)

// NotifyRequest asks the shell to show a desktop notification.
type NotifyRequest struct {
	Title string
	Body  string
	Icon  string
}

// ItemUpdateRequest applies one update to a tray menu item by its
// identifier.
type ItemUpdateRequest struct {
	ID string

	// Op selects the update: set-title, set-enabled, set-selected, or
	// set-native-image.
	Op string

	Title    string
	Enabled  bool
	Selected bool
	Image    string
}

func (s *Service) Notify() func(qrpc.Responder, *qrpc.Call) {
	return func(r qrpc.Responder, c *qrpc.Call) {
		var req NotifyRequest
		if err := c.Decode(&req); err != nil {
			r.Return(err)
			return
		}

		err := notify.New(s.AppID).
			Title(req.Title).
			Body(req.Body).
			Icon(req.Icon).
			Show()
		if err != nil {
			r.Return(err)
			return
		}
		r.Return("notification shown")
	}
}

func (s *Service) CLIMatches() func(qrpc.Responder, *qrpc.Call) {
	return func(r qrpc.Responder, c *qrpc.Call) {
		var args []string
		if err := c.Decode(&args); err != nil {
			r.Return(err)
			return
		}
		if args == nil {
			args = os.Args[1:]
		}

		m, err := cli.GetMatches(s.CLI, args)
		if err != nil {
			r.Return(err)
			return
		}
		r.Return(m)
	}
}

func (s *Service) ItemUpdate() func(qrpc.Responder, *qrpc.Call) {
	return func(r qrpc.Responder, c *qrpc.Call) {
		var req ItemUpdateRequest
		if err := c.Decode(&req); err != nil {
			r.Return(err)
			return
		}

		msg, err := applyItemUpdate(s.Tray.Handle(), req)
		if err != nil {
			logging.Debug(s.Log, "[bridge] item-update failed:", spew.Sdump(req))
			r.Return(err)
			return
		}
		r.Return(msg)
	}
}

// SetTitle is item-update fixed to the set-title op, for callers that
// only ever retitle.
func (s *Service) SetTitle() func(qrpc.Responder, *qrpc.Call) {
	return func(r qrpc.Responder, c *qrpc.Call) {
		var req ItemUpdateRequest
		if err := c.Decode(&req); err != nil {
			r.Return(err)
			return
		}

		msg, err := applySetTitle(s.Tray.Handle(), req)
		if err != nil {
			r.Return(err)
			return
		}
		r.Return(msg)
	}
}

func applySetTitle(h *tray.Handle, req ItemUpdateRequest) (string, error) {
	req.Op = "set-title"
	return applyItemUpdate(h, req)
}

func applyItemUpdate(h *tray.Handle, req ItemUpdateRequest) (string, error) {
	item, err := h.GetItem(req.ID)
	if err != nil {
		return "", err
	}

	switch req.Op {
	case "set-title":
		err = item.SetTitle(req.Title)
	case "set-enabled":
		err = item.SetEnabled(req.Enabled)
	case "set-selected":
		err = item.SetSelected(req.Selected)
	case "set-native-image":
		err = item.SetNativeImage(tray.NativeImage(req.Image))
	default:
		return "", fmt.Errorf("unknown item update op %q", req.Op)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("item %q updated", req.ID), nil
}
