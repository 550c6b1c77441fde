package tray

// Capability identifies an optional feature of a native tray backend.
// Some capabilities exist only on certain platforms; callers can
// probe support at runtime instead of relying on build conditions.
type Capability string

const (
	// CapIconAsTemplate is macOS template-image treatment of the tray
	// icon.
	CapIconAsTemplate Capability = "icon-as-template"

	// CapNativeImage is the macOS system-image update for menu items.
	CapNativeImage Capability = "native-image"

	// Click events on the tray icon itself. Availability varies by
	// platform and backend.
	CapLeftClick   Capability = "left-click"
	CapRightClick  Capability = "right-click"
	CapDoubleClick Capability = "double-click"
)

// Native is the capability boundary over a platform tray
// implementation. Implementations must be callable from any
// goroutine, and Clone must preserve that contract. Calls are
// one-shot: the binding reports authoritative success or failure and
// is never retried.
type Native interface {
	// SetIcon replaces the tray icon.
	SetIcon(icon Icon) error

	// SetMenu replaces the whole context menu, invalidating every
	// handle realized for the previous menu.
	SetMenu(menu *Menu) error

	// UpdateItem applies a single update to the entry realized under
	// handle. A handle orphaned by a menu replacement fails here.
	UpdateItem(handle uint64, update ItemUpdate) error

	// SetIconAsTemplate toggles template-image semantics for the tray
	// icon where CapIconAsTemplate is supported.
	SetIconAsTemplate(template bool) error

	// Supports reports whether the backend provides c on the running
	// platform.
	Supports(c Capability) bool

	// Clone returns a binding sharing the same underlying tray.
	Clone() Native
}
