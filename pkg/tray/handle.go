package tray

import (
	"sync"

	"github.com/manifold/appshell/pkg/misc/logging"
)

// registry maps realized numeric handles to caller identifiers for
// the currently installed menu. It is shared by every clone of a
// Handle and replaced wholesale on each menu installation, never
// mutated incrementally.
type registry struct {
	mu  sync.Mutex
	ids map[uint64]string
}

// Handle is the shared facade over an installed tray. Clones share
// one registry and may be used from any goroutine; no method holds
// the registry lock across a native call.
type Handle struct {
	reg    *registry
	native Native
	log    logging.DebugLogger
}

// NewHandle builds a tray handle over a native binding. The registry
// starts out seeded from menu, which may be nil when the menu is
// installed later through SetMenu.
func NewHandle(native Native, menu *Menu, log logging.DebugLogger) *Handle {
	ids := make(map[uint64]string)
	menuHandles(ids, menu)
	return &Handle{
		reg:    &registry{ids: ids},
		native: native,
		log:    log,
	}
}

// Clone returns a handle sharing the same registry and underlying
// tray. Cloning never copies menu state.
func (h *Handle) Clone() *Handle {
	return &Handle{reg: h.reg, native: h.native.Clone(), log: h.log}
}

// GetItem resolves a caller identifier against the currently
// installed menu and returns a handle to that single item. When the
// identifier is absent a *NotFoundError is returned; callers decide
// whether that is fatal.
func (h *Handle) GetItem(id string) (*ItemHandle, error) {
	h.reg.mu.Lock()
	defer h.reg.mu.Unlock()
	for raw, itemID := range h.reg.ids {
		if itemID == id {
			return &ItemHandle{id: raw, native: h.native.Clone()}, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// SetIcon replaces the tray icon. The icon must be a FileIcon on
// Linux and a RawIcon on Windows and macOS; the backend rejects the
// wrong variant.
func (h *Handle) SetIcon(icon Icon) error {
	return h.native.SetIcon(icon)
}

// SetMenu replaces the whole tray menu. The registry is swapped to
// the new menu only after the native layer accepts it; on failure the
// old menu and registry stay authoritative and the error is returned.
func (h *Handle) SetMenu(menu *Menu) error {
	ids := make(map[uint64]string)
	menuHandles(ids, menu)
	if dups := duplicateIDs(menu); len(dups) > 0 {
		logging.Debugf(h.log, "tray: duplicate menu item ids %v; the last one wins", dups)
	}
	if err := h.native.SetMenu(menu); err != nil {
		return err
	}
	h.reg.mu.Lock()
	h.reg.ids = ids
	h.reg.mu.Unlock()
	return nil
}

// SetIconAsTemplate toggles macOS template-image treatment of the
// tray icon. Backends report it unsupported elsewhere.
func (h *Handle) SetIconAsTemplate(template bool) error {
	return h.native.SetIconAsTemplate(template)
}

// Supports probes the underlying backend for an optional capability.
func (h *Handle) Supports(c Capability) bool {
	return h.native.Supports(c)
}
