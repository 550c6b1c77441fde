package tray

// PhysicalPosition is a screen position in physical pixels.
type PhysicalPosition struct {
	X float64
	Y float64
}

// PhysicalSize is an extent in physical pixels.
type PhysicalSize struct {
	Width  float64
	Height float64
}

// Event is a stateless notification from the native tray layer. The
// current set is MenuItemClick, LeftClick, RightClick, and
// DoubleClick; more kinds may be added. Delivery order relative to
// other events is backend-defined.
type Event interface {
	isEvent()
}

// MenuItemClick reports a click on a context menu item.
type MenuItemClick struct {
	// ID is the caller-chosen identifier of the clicked item.
	ID string
}

func (MenuItemClick) isEvent() {}

// LeftClick reports a left click on the tray icon itself. Not
// delivered on Linux.
type LeftClick struct {
	Position PhysicalPosition
	Size     PhysicalSize
}

func (LeftClick) isEvent() {}

// RightClick reports a right click on the tray icon. Not delivered on
// Linux; macOS fires it for Ctrl plus left click.
type RightClick struct {
	Position PhysicalPosition
	Size     PhysicalSize
}

func (RightClick) isEvent() {}

// DoubleClick reports a double click on the tray icon. Delivered on
// Windows only.
type DoubleClick struct {
	Position PhysicalPosition
	Size     PhysicalSize
}

func (DoubleClick) isEvent() {}

// Handler receives tray events from the native layer. No return value
// is expected; handlers must not assume any delivery ordering.
type Handler func(Event)
