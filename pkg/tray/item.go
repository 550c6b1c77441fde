package tray

// ItemHandle mutates one already-realized menu entry. It stays usable
// until the menu is replaced; updates after that fail with the native
// layer's staleness error rather than being detected here.
type ItemHandle struct {
	id     uint64
	native Native
}

// Clone returns an equivalent handle. The item identity is the bare
// numeric handle; nothing mutable is shared.
func (i *ItemHandle) Clone() *ItemHandle {
	return &ItemHandle{id: i.id, native: i.native.Clone()}
}

// Handle returns the numeric handle of the bound entry.
func (i *ItemHandle) Handle() uint64 {
	return i.id
}

// SetEnabled toggles whether the entry can be clicked.
func (i *ItemHandle) SetEnabled(enabled bool) error {
	return i.native.UpdateItem(i.id, SetEnabled{Enabled: enabled})
}

// SetTitle replaces the entry's label.
func (i *ItemHandle) SetTitle(title string) error {
	return i.native.UpdateItem(i.id, SetTitle{Title: title})
}

// SetSelected toggles the entry's check mark.
func (i *ItemHandle) SetSelected(selected bool) error {
	return i.native.UpdateItem(i.id, SetSelected{Selected: selected})
}

// SetNativeImage sets a system-provided image on the entry. macOS
// only; other platforms report it unsupported.
func (i *ItemHandle) SetNativeImage(image NativeImage) error {
	return i.native.UpdateItem(i.id, SetNativeImage{Image: image})
}
