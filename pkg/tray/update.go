package tray

// ItemUpdate is a single targeted change to a realized menu entry.
// The closed set of updates is SetEnabled, SetTitle, SetSelected, and
// SetNativeImage.
type ItemUpdate interface {
	isUpdate()
}

// SetEnabled toggles whether the entry can be clicked.
type SetEnabled struct {
	Enabled bool
}

func (SetEnabled) isUpdate() {}

// SetTitle replaces the entry's label.
type SetTitle struct {
	Title string
}

func (SetTitle) isUpdate() {}

// SetSelected toggles the entry's check mark.
type SetSelected struct {
	Selected bool
}

func (SetSelected) isUpdate() {}

// SetNativeImage sets a system-provided image on the entry. Only
// meaningful where CapNativeImage is supported.
type SetNativeImage struct {
	Image NativeImage
}

func (SetNativeImage) isUpdate() {}
