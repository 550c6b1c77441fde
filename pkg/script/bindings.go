package script

import (
	"errors"
	"sync"

	"github.com/d5/tengo/objects"
	"github.com/skratchdot/open-golang/open"

	"github.com/manifold/appshell/pkg/notify"
	"github.com/manifold/appshell/pkg/tray"
)

// Bindings are the host functions a front-end script can call. The
// tray handle arrives after the script is first loaded, once the tray
// is up; calls that need it before then report an error.
type Bindings struct {
	mu     sync.Mutex
	handle *tray.Handle
	appID  string

	// test seams
	notifier notify.Notifier
	open     func(target string) error
}

// NewBindings returns bindings that notify under appID.
func NewBindings(appID string) *Bindings {
	return &Bindings{appID: appID, open: open.Run}
}

// SetHandle installs the tray handle the item functions act through.
func (b *Bindings) SetHandle(h *tray.Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handle = h
}

func (b *Bindings) tray() (*tray.Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handle == nil {
		return nil, errors.New("tray not ready")
	}
	return b.handle, nil
}

func (b *Bindings) functions() map[string]*objects.UserFunction {
	return map[string]*objects.UserFunction{
		"notify":        {Name: "notify", Value: b.notifyFn},
		"set_title":     {Name: "set_title", Value: b.setTitleFn},
		"set_enabled":   {Name: "set_enabled", Value: b.setEnabledFn},
		"set_selected":  {Name: "set_selected", Value: b.setSelectedFn},
		"open_external": {Name: "open_external", Value: b.openExternalFn},
	}
}

// notify(title, body) shows a desktop notification.
func (b *Bindings) notifyFn(args ...objects.Object) (objects.Object, error) {
	if len(args) != 2 {
		return nil, objects.ErrWrongNumArguments
	}
	title, _ := objects.ToString(args[0])
	body, _ := objects.ToString(args[1])

	n := notify.New(b.appID).Title(title).Body(body)
	if b.notifier != nil {
		n = n.Via(b.notifier)
	}
	if err := n.Show(); err != nil {
		return nil, err
	}
	return objects.UndefinedValue, nil
}

// set_title(id, title) retitles a menu item.
func (b *Bindings) setTitleFn(args ...objects.Object) (objects.Object, error) {
	if len(args) != 2 {
		return nil, objects.ErrWrongNumArguments
	}
	id, _ := objects.ToString(args[0])
	title, _ := objects.ToString(args[1])

	item, err := b.item(id)
	if err != nil {
		return nil, err
	}
	if err := item.SetTitle(title); err != nil {
		return nil, err
	}
	return objects.UndefinedValue, nil
}

// set_enabled(id, enabled) toggles a menu item.
func (b *Bindings) setEnabledFn(args ...objects.Object) (objects.Object, error) {
	return b.boolItemFn(args, func(item *tray.ItemHandle, v bool) error {
		return item.SetEnabled(v)
	})
}

// set_selected(id, selected) checks or unchecks a menu item.
func (b *Bindings) setSelectedFn(args ...objects.Object) (objects.Object, error) {
	return b.boolItemFn(args, func(item *tray.ItemHandle, v bool) error {
		return item.SetSelected(v)
	})
}

// open_external(target) opens a URL or path with the system handler.
func (b *Bindings) openExternalFn(args ...objects.Object) (objects.Object, error) {
	if len(args) != 1 {
		return nil, objects.ErrWrongNumArguments
	}
	target, _ := objects.ToString(args[0])
	if err := b.open(target); err != nil {
		return nil, err
	}
	return objects.UndefinedValue, nil
}

func (b *Bindings) boolItemFn(args []objects.Object, apply func(*tray.ItemHandle, bool) error) (objects.Object, error) {
	if len(args) != 2 {
		return nil, objects.ErrWrongNumArguments
	}
	id, _ := objects.ToString(args[0])
	v, _ := objects.ToBool(args[1])

	item, err := b.item(id)
	if err != nil {
		return nil, err
	}
	if err := apply(item, v); err != nil {
		return nil, err
	}
	return objects.UndefinedValue, nil
}

func (b *Bindings) item(id string) (*tray.ItemHandle, error) {
	h, err := b.tray()
	if err != nil {
		return nil, err
	}
	return h.GetItem(id)
}
