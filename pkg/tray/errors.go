package tray

import "fmt"

// NotFoundError is returned by GetItem when no entry of the installed
// menu carries the requested identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("tray: no menu item with id %q", e.ID)
}

// StaleHandleError is returned by a backend when an update targets a
// handle that no longer exists, usually because the menu was replaced
// after the item handle was minted.
type StaleHandleError struct {
	Handle uint64
}

func (e *StaleHandleError) Error() string {
	return fmt.Sprintf("tray: menu item handle %d is no longer installed", e.Handle)
}

// UnsupportedError is returned when a backend does not provide the
// requested feature on the running platform.
type UnsupportedError struct {
	Feature  string
	Platform string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("tray: %s is not supported on %s", e.Feature, e.Platform)
}
