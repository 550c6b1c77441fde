package tray

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUpdate struct {
	handle uint64
	update ItemUpdate
}

// fakeNative records native calls and can be told to fail them.
type fakeNative struct {
	mu        sync.Mutex
	menus     []*Menu
	icons     []Icon
	updates   []fakeUpdate
	templates []bool
	menuErr   error
	updateErr error
}

func (f *fakeNative) SetIcon(icon Icon) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.icons = append(f.icons, icon)
	return nil
}

func (f *fakeNative) SetMenu(menu *Menu) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.menuErr != nil {
		return f.menuErr
	}
	f.menus = append(f.menus, menu)
	return nil
}

func (f *fakeNative) UpdateItem(handle uint64, update ItemUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, fakeUpdate{handle: handle, update: update})
	return nil
}

func (f *fakeNative) SetIconAsTemplate(template bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.templates = append(f.templates, template)
	return nil
}

func (f *fakeNative) Supports(c Capability) bool { return false }

func (f *fakeNative) Clone() Native { return f }

func quitMenu() *Menu {
	return NewMenu().AddItem(Item{ID: "quit", Title: "Quit", Enabled: true})
}

func TestGetItem(t *testing.T) {
	t.Run("resolves a top-level item", func(t *testing.T) {
		h := NewHandle(&fakeNative{}, quitMenu(), nil)

		item, err := h.GetItem("quit")
		require.NoError(t, err)
		assert.Equal(t, Item{ID: "quit"}.Handle(), item.Handle())
	})

	t.Run("resolves a nested item", func(t *testing.T) {
		menu := NewMenu().AddSubmenu("More", NewMenu().
			AddSubmenu("Even more", NewMenu().
				AddItem(Item{ID: "about", Title: "About"})))
		h := NewHandle(&fakeNative{}, menu, nil)

		item, err := h.GetItem("about")
		require.NoError(t, err)
		assert.Equal(t, Item{ID: "about"}.Handle(), item.Handle())
	})

	t.Run("missing id is a typed error", func(t *testing.T) {
		h := NewHandle(&fakeNative{}, quitMenu(), nil)

		_, err := h.GetItem("missing")
		require.Error(t, err)

		var notFound *NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "missing", notFound.ID)
	})
}

func TestSetMenu(t *testing.T) {
	t.Run("swaps the registry after the native call", func(t *testing.T) {
		native := &fakeNative{}
		h := NewHandle(native, quitMenu(), nil)

		require.NoError(t, h.SetMenu(NewMenu().AddItem(Item{ID: "about"})))

		_, err := h.GetItem("quit")
		assert.Error(t, err)
		_, err = h.GetItem("about")
		assert.NoError(t, err)
		assert.Len(t, native.menus, 1)
	})

	t.Run("keeps the old registry when the native call fails", func(t *testing.T) {
		native := &fakeNative{menuErr: errors.New("platform says no")}
		h := NewHandle(native, quitMenu(), nil)

		err := h.SetMenu(NewMenu().AddItem(Item{ID: "about"}))
		require.Error(t, err)

		_, err = h.GetItem("quit")
		assert.NoError(t, err)
		_, err = h.GetItem("about")
		assert.Error(t, err)
	})

	t.Run("is idempotent for identical menus", func(t *testing.T) {
		h := NewHandle(&fakeNative{}, nil, nil)

		require.NoError(t, h.SetMenu(quitMenu()))
		first, err := h.GetItem("quit")
		require.NoError(t, err)

		require.NoError(t, h.SetMenu(quitMenu()))
		second, err := h.GetItem("quit")
		require.NoError(t, err)

		assert.Equal(t, first.Handle(), second.Handle())
	})

	t.Run("clones observe the swap", func(t *testing.T) {
		h := NewHandle(&fakeNative{}, quitMenu(), nil)
		clone := h.Clone()

		require.NoError(t, h.SetMenu(NewMenu().AddItem(Item{ID: "about"})))

		_, err := clone.GetItem("about")
		assert.NoError(t, err)
	})
}

func TestConcurrentGetItem(t *testing.T) {
	// Readers racing a menu swap must observe either the old or the
	// new registry, never a mix.
	h := NewHandle(&fakeNative{}, quitMenu(), nil)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				_, errQuit := h.GetItem("quit")
				_, errAbout := h.GetItem("about")
				if errQuit != nil && errAbout != nil {
					// Each lookup saw a registry from the other
					// generation; both ids never vanish at once.
					t.Error("observed a registry with neither menu installed")
					return
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		require.NoError(t, h.SetMenu(NewMenu().
			AddItem(Item{ID: "quit"}).
			AddItem(Item{ID: "about"})))
	}
	close(stop)
	wg.Wait()
}

func TestItemHandleUpdates(t *testing.T) {
	native := &fakeNative{}
	h := NewHandle(native, quitMenu(), nil)

	item, err := h.GetItem("quit")
	require.NoError(t, err)

	require.NoError(t, item.SetEnabled(false))
	require.NoError(t, item.SetTitle("Quit Now"))
	require.NoError(t, item.SetSelected(true))
	require.NoError(t, item.SetNativeImage(NativeImageStatusAvailable))

	require.Len(t, native.updates, 4)
	for _, u := range native.updates {
		assert.Equal(t, item.Handle(), u.handle)
	}
	assert.Equal(t, SetEnabled{Enabled: false}, native.updates[0].update)
	assert.Equal(t, SetTitle{Title: "Quit Now"}, native.updates[1].update)
	assert.Equal(t, SetSelected{Selected: true}, native.updates[2].update)
	assert.Equal(t, SetNativeImage{Image: NativeImageStatusAvailable}, native.updates[3].update)
}

func TestItemHandleStaleness(t *testing.T) {
	native := &fakeNative{}
	h := NewHandle(native, quitMenu(), nil)

	item, err := h.GetItem("quit")
	require.NoError(t, err)

	// Replacing the menu orphans the minted handle; the backend's
	// error surfaces unchanged.
	require.NoError(t, h.SetMenu(NewMenu().AddItem(Item{ID: "about"})))
	native.updateErr = &StaleHandleError{Handle: item.Handle()}

	err = item.SetTitle("gone")
	var stale *StaleHandleError
	require.True(t, errors.As(err, &stale))
}
