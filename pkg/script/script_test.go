package script

import (
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manifold/appshell/pkg/notify"
	"github.com/manifold/appshell/pkg/tray"
)

const appSource = `
menu := [
	{id: "status", title: "Status: idle", enabled: false},
	"---",
	{title: "Advanced", submenu: [{id: "reload", title: "Reload"}]},
	{id: "quit"}
]

if event != undefined {
	if event.kind == "menu-item-click" && event.id == "quit" {
		notify("Example", "quitting")
		set_title("status", "Status: quitting")
	}
	if event.kind == "menu-item-click" && event.id == "reload" {
		set_enabled("status", true)
		set_selected("reload", true)
	}
}
`

func writeApp(t *testing.T, source string) afero.Fs {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/app.tengo", []byte(source), 0644))
	return fs
}

type fakeNative struct {
	mu      sync.Mutex
	updates map[uint64][]tray.ItemUpdate
}

func newFakeNative() *fakeNative {
	return &fakeNative{updates: make(map[uint64][]tray.ItemUpdate)}
}

func (f *fakeNative) SetIcon(tray.Icon) error       { return nil }
func (f *fakeNative) SetMenu(*tray.Menu) error      { return nil }
func (f *fakeNative) SetIconAsTemplate(bool) error  { return nil }
func (f *fakeNative) Supports(tray.Capability) bool { return false }
func (f *fakeNative) Clone() tray.Native            { return f }

func (f *fakeNative) UpdateItem(handle uint64, update tray.ItemUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates[handle] = append(f.updates[handle], update)
	return nil
}

func (f *fakeNative) updatesFor(item tray.Item) []tray.ItemUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updates[item.Handle()]
}

type recordingNotifier struct {
	reqs []notify.Request
}

func (r *recordingNotifier) Show(req notify.Request) error {
	r.reqs = append(r.reqs, req)
	return nil
}

func TestLoadMenu(t *testing.T) {
	app, err := Load(writeApp(t, appSource), "/app.tengo", NewBindings(""))
	require.NoError(t, err)

	menu := app.Menu()
	require.Len(t, menu.Items, 4)
	assert.Equal(t, tray.Item{ID: "status", Title: "Status: idle"}, menu.Items[0])
	assert.Equal(t, tray.Separator{}, menu.Items[1])

	sub, ok := menu.Items[2].(tray.Submenu)
	require.True(t, ok)
	assert.Equal(t, "Advanced", sub.Title)
	require.Len(t, sub.Inner.Items, 1)
	assert.Equal(t, tray.Item{ID: "reload", Title: "Reload", Enabled: true}, sub.Inner.Items[0])

	// a bare id falls back to itself as title
	assert.Equal(t, tray.Item{ID: "quit", Title: "quit", Enabled: true}, menu.Items[3])
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(afero.NewMemMapFs(), "/nope.tengo", NewBindings(""))
		assert.Error(t, err)
	})

	t.Run("no menu declared", func(t *testing.T) {
		_, err := Load(writeApp(t, `x := 1`), "/app.tengo", NewBindings(""))
		assert.Error(t, err)
	})

	t.Run("item without id", func(t *testing.T) {
		_, err := Load(writeApp(t, `menu := [{title: "nameless"}]`), "/app.tengo", NewBindings(""))
		assert.Error(t, err)
	})

	t.Run("bogus entry", func(t *testing.T) {
		_, err := Load(writeApp(t, `menu := ["***"]`), "/app.tengo", NewBindings(""))
		assert.Error(t, err)
	})
}

func TestHandleEvent(t *testing.T) {
	bind := NewBindings("com.example.app")
	rec := &recordingNotifier{}
	bind.notifier = rec

	app, err := Load(writeApp(t, appSource), "/app.tengo", bind)
	require.NoError(t, err)

	native := newFakeNative()
	bind.SetHandle(tray.NewHandle(native, app.Menu(), nil))

	require.NoError(t, app.HandleEvent(tray.MenuItemClick{ID: "quit"}))

	require.Len(t, rec.reqs, 1)
	assert.Equal(t, "Example", rec.reqs[0].Title)
	assert.Equal(t, "quitting", rec.reqs[0].Body)
	assert.Equal(t, []tray.ItemUpdate{tray.SetTitle{Title: "Status: quitting"}},
		native.updatesFor(tray.Item{ID: "status"}))

	require.NoError(t, app.HandleEvent(tray.MenuItemClick{ID: "reload"}))
	assert.Contains(t, native.updatesFor(tray.Item{ID: "status"}), tray.ItemUpdate(tray.SetEnabled{Enabled: true}))
	assert.Equal(t, []tray.ItemUpdate{tray.SetSelected{Selected: true}},
		native.updatesFor(tray.Item{ID: "reload"}))

	// unhandled kinds run the script without side effects
	require.NoError(t, app.HandleEvent(tray.LeftClick{}))
	require.Len(t, rec.reqs, 1)
}

func TestHandleEventBeforeTrayReady(t *testing.T) {
	bind := NewBindings("")
	bind.notifier = &recordingNotifier{}
	app, err := Load(writeApp(t, appSource), "/app.tengo", bind)
	require.NoError(t, err)

	// the handle is only bound once the tray is up
	assert.Error(t, app.HandleEvent(tray.MenuItemClick{ID: "quit"}))
}

func TestEventValue(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"kind": "menu-item-click", "id": "quit"},
		eventValue(tray.MenuItemClick{ID: "quit"}))

	v := eventValue(tray.RightClick{
		Position: tray.PhysicalPosition{X: 10, Y: 20},
		Size:     tray.PhysicalSize{Width: 32, Height: 32},
	})
	assert.Equal(t, "right-click", v["kind"])
	assert.Equal(t, float64(10), v["x"])
	assert.Equal(t, float64(32), v["w"])
}
