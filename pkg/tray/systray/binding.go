package systray

import (
	"runtime"
	"sync"

	lantern "fyne.io/systray"
	"github.com/spf13/afero"

	"github.com/manifold/appshell/pkg/tray"
)

var _ tray.Native = (*Binding)(nil)

// Binding implements tray.Native over the fyne.io/systray package.
// A process owns at most one native tray, so clones share the same
// realized state; the systray package serializes the actual native
// work onto its UI loop, which keeps the binding callable from any
// goroutine.
type Binding struct {
	state *state
}

type state struct {
	mu       sync.Mutex
	fs       afero.Fs
	handler  tray.Handler
	items    map[uint64]*lantern.MenuItem
	gen      chan struct{} // closed when the menu generation is replaced
	icon     []byte        // last realized icon bytes, kept for template toggling
	template bool
}

// NewBinding returns a binding that reads file-backed icons through
// fs and delivers menu click events to handler. A nil fs falls back
// to the OS filesystem.
func NewBinding(fs afero.Fs, handler tray.Handler) *Binding {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Binding{state: &state{
		fs:      fs,
		handler: handler,
		items:   make(map[uint64]*lantern.MenuItem),
	}}
}

// SetIcon realizes the icon onto the tray. The variant must match the
// running platform: file-backed on Linux, bytes-backed elsewhere.
func (b *Binding) SetIcon(icon tray.Icon) error {
	if err := tray.CheckIcon(icon, runtime.GOOS); err != nil {
		return err
	}

	s := b.state
	var data []byte
	switch ic := icon.(type) {
	case tray.FileIcon:
		raw, err := tray.ReadIcon(s.fs, ic.Path)
		if err != nil {
			return err
		}
		data = raw.Data
	case tray.RawIcon:
		data = ic.Data
	}

	s.mu.Lock()
	s.icon = data
	template := s.template
	s.mu.Unlock()

	if template {
		lantern.SetTemplateIcon(data, data)
	} else {
		lantern.SetIcon(data)
	}
	return nil
}

// SetMenu tears down the previous menu generation and realizes the
// new tree. Handles of the old generation become stale.
func (b *Binding) SetMenu(menu *tray.Menu) error {
	s := b.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != nil {
		close(s.gen)
	}
	s.gen = make(chan struct{})

	lantern.ResetMenu()
	items := make(map[uint64]*lantern.MenuItem)
	b.realize(items, nil, menu, s.gen)
	s.items = items
	return nil
}

func (b *Binding) realize(items map[uint64]*lantern.MenuItem, parent *lantern.MenuItem, menu *tray.Menu, gen chan struct{}) {
	if menu == nil {
		return
	}
	for _, e := range menu.Items {
		switch entry := e.(type) {
		case tray.Item:
			var mi *lantern.MenuItem
			if parent == nil {
				mi = lantern.AddMenuItem(entry.Title, entry.Tooltip)
			} else {
				mi = parent.AddSubMenuItem(entry.Title, entry.Tooltip)
			}
			if entry.Selected {
				mi.Check()
			}
			if !entry.Enabled {
				mi.Disable()
			}
			items[entry.Handle()] = mi
			go b.pump(entry.ID, mi, gen)
		case tray.Submenu:
			var mi *lantern.MenuItem
			if parent == nil {
				mi = lantern.AddMenuItem(entry.Title, "")
			} else {
				mi = parent.AddSubMenuItem(entry.Title, "")
			}
			b.realize(items, mi, entry.Inner, gen)
		case tray.Separator:
			// the library cannot render separators inside submenus
			if parent == nil {
				lantern.AddSeparator()
			}
		}
	}
}

// pump forwards clicks for one realized item until its menu
// generation is replaced or the item is torn down.
func (b *Binding) pump(id string, mi *lantern.MenuItem, gen chan struct{}) {
	for {
		select {
		case <-gen:
			return
		case _, ok := <-mi.ClickedCh:
			if !ok {
				return
			}
			b.emit(tray.MenuItemClick{ID: id})
		}
	}
}

func (b *Binding) emit(ev tray.Event) {
	s := b.state
	s.mu.Lock()
	handler := s.handler
	s.mu.Unlock()
	if handler != nil {
		handler(ev)
	}
}

// UpdateItem applies one update to a realized entry. Handles orphaned
// by a menu replacement fail with a staleness error.
func (b *Binding) UpdateItem(handle uint64, update tray.ItemUpdate) error {
	s := b.state
	s.mu.Lock()
	mi, ok := s.items[handle]
	s.mu.Unlock()
	if !ok {
		return &tray.StaleHandleError{Handle: handle}
	}

	switch u := update.(type) {
	case tray.SetEnabled:
		if u.Enabled {
			mi.Enable()
		} else {
			mi.Disable()
		}
	case tray.SetTitle:
		mi.SetTitle(u.Title)
	case tray.SetSelected:
		if u.Selected {
			mi.Check()
		} else {
			mi.Uncheck()
		}
	case tray.SetNativeImage:
		return &tray.UnsupportedError{Feature: "native menu item images", Platform: runtime.GOOS}
	}
	return nil
}

// SetIconAsTemplate toggles template-image treatment on macOS. The
// new mode applies to the current icon immediately and to icons set
// later.
func (b *Binding) SetIconAsTemplate(template bool) error {
	if runtime.GOOS != "darwin" {
		return &tray.UnsupportedError{Feature: "template tray icons", Platform: runtime.GOOS}
	}

	s := b.state
	s.mu.Lock()
	s.template = template
	icon := s.icon
	s.mu.Unlock()

	if len(icon) == 0 {
		return nil
	}
	if template {
		lantern.SetTemplateIcon(icon, icon)
	} else {
		lantern.SetIcon(icon)
	}
	return nil
}

// Supports reports the backend's optional capabilities on the running
// platform. Icon clicks are not observable through this library, so
// the click capabilities are always absent.
func (b *Binding) Supports(c tray.Capability) bool {
	switch c {
	case tray.CapIconAsTemplate:
		return runtime.GOOS == "darwin"
	default:
		return false
	}
}

// Clone returns a binding over the same native tray.
func (b *Binding) Clone() tray.Native {
	return &Binding{state: b.state}
}
