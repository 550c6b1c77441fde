// Package script runs a tengo front-end script for the shell. The
// script declares a `menu` global describing the tray menu and is
// re-run with an `event` global bound for every tray event. On the
// initial load `event` is undefined, which lets scripts separate
// setup from event handling.
package script

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/script"
	"github.com/spf13/afero"

	"github.com/manifold/appshell/pkg/tray"
)

// App is a compiled front-end script plus the menu it declares.
type App struct {
	compiled *script.Compiled
	menu     *tray.Menu

	mu sync.Mutex // event runs re-execute the script; serialize them
}

// Load reads and compiles the app script through fs, evaluates it
// once, and extracts the menu it declares. Host functions from b are
// visible to the script.
func Load(fs afero.Fs, path string, b *Bindings) (*App, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	s := script.New(src)
	if err := s.Add("event", nil); err != nil {
		return nil, err
	}
	for name, fn := range b.functions() {
		if err := s.Add(name, fn); err != nil {
			return nil, err
		}
	}

	compiled, err := s.Run()
	if err != nil {
		return nil, fmt.Errorf("script: %v", err)
	}

	menuVar := compiled.Get("menu")
	if menuVar == nil || menuVar.Value() == nil {
		return nil, fmt.Errorf("script: %s declares no menu", path)
	}
	menu, err := menuFromValue(menuVar.Value())
	if err != nil {
		return nil, fmt.Errorf("script: %s: %v", path, err)
	}

	return &App{compiled: compiled, menu: menu}, nil
}

// Menu returns the menu the script declared at load time.
func (a *App) Menu() *tray.Menu {
	return a.menu
}

// HandleEvent re-runs the script with ev bound to the `event` global.
func (a *App) HandleEvent(ev tray.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.compiled.Set("event", eventValue(ev)); err != nil {
		return err
	}
	return a.compiled.Run()
}

// menuFromValue converts the script's menu declaration into a menu
// tree. A declaration is a list of entry maps; the string "---" is a
// separator, and a map with a "submenu" key nests.
func menuFromValue(v interface{}) (*tray.Menu, error) {
	entries, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("menu must be a list, got %T", v)
	}

	menu := tray.NewMenu()
	for _, entry := range entries {
		switch e := entry.(type) {
		case string:
			if e != "---" {
				return nil, fmt.Errorf("unknown menu entry %q", e)
			}
			menu.AddSeparator()
		case map[string]interface{}:
			if sub, ok := e["submenu"]; ok {
				inner, err := menuFromValue(sub)
				if err != nil {
					return nil, err
				}
				menu.AddSubmenu(stringOr(e["title"], ""), inner)
				continue
			}
			id := stringOr(e["id"], "")
			if id == "" {
				return nil, fmt.Errorf("menu item %v has no id", e)
			}
			menu.AddItem(tray.Item{
				ID:       id,
				Title:    stringOr(e["title"], id),
				Tooltip:  stringOr(e["tooltip"], ""),
				Enabled:  boolOr(e["enabled"], true),
				Selected: boolOr(e["selected"], false),
			})
		default:
			return nil, fmt.Errorf("unknown menu entry %v", entry)
		}
	}
	return menu, nil
}

// eventValue flattens a tray event into the map handed to the script.
func eventValue(ev tray.Event) map[string]interface{} {
	switch e := ev.(type) {
	case tray.MenuItemClick:
		return map[string]interface{}{"kind": "menu-item-click", "id": e.ID}
	case tray.LeftClick:
		return clickValue("left-click", e.Position, e.Size)
	case tray.RightClick:
		return clickValue("right-click", e.Position, e.Size)
	case tray.DoubleClick:
		return clickValue("double-click", e.Position, e.Size)
	}
	return map[string]interface{}{"kind": "unknown"}
}

func clickValue(kind string, pos tray.PhysicalPosition, size tray.PhysicalSize) map[string]interface{} {
	return map[string]interface{}{
		"kind": kind,
		"x":    pos.X,
		"y":    pos.Y,
		"w":    size.Width,
		"h":    size.Height,
	}
}

func stringOr(v interface{}, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func boolOr(v interface{}, fallback bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return fallback
}
