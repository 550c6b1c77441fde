package tray

import "github.com/mitchellh/hashstructure"

// Menu is a declarative, ordered tray menu. Entries are realized by
// the native layer when the menu is installed with SetMenu.
type Menu struct {
	Items []Entry
}

// NewMenu returns an empty menu.
func NewMenu() *Menu {
	return &Menu{}
}

// AddItem appends a clickable item.
func (m *Menu) AddItem(item Item) *Menu {
	m.Items = append(m.Items, item)
	return m
}

// AddSubmenu appends a nested menu.
func (m *Menu) AddSubmenu(title string, inner *Menu) *Menu {
	m.Items = append(m.Items, Submenu{Title: title, Inner: inner})
	return m
}

// AddSeparator appends a decorative separator.
func (m *Menu) AddSeparator() *Menu {
	m.Items = append(m.Items, Separator{})
	return m
}

// Entry is one node of a menu. The closed set of entries is Item,
// Submenu, and Separator.
type Entry interface {
	isEntry()
}

// Item is a leaf entry named by a caller-chosen identifier. The
// identifier must be unique within one installed menu for lookups to
// be unambiguous.
type Item struct {
	ID       string
	Title    string
	Tooltip  string
	Enabled  bool
	Selected bool
}

func (Item) isEntry() {}

// Handle returns the numeric handle the native layer knows this item
// by once the menu is installed. Handles are a stable hash of the
// identifier, so rebuilding a menu with the same identifiers realizes
// the same handles.
func (i Item) Handle() uint64 {
	h, _ := hashstructure.Hash(i.ID, nil)
	return h
}

// Submenu is a composite entry holding a nested menu. Its leaf items
// share the parent menu's identifier namespace.
type Submenu struct {
	Title string
	Inner *Menu
}

func (Submenu) isEntry() {}

// Separator is a decorative entry. It carries no identifier and
// produces no registry entry.
type Separator struct{}

func (Separator) isEntry() {}
