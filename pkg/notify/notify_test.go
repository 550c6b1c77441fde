package notify

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	reqs []Request
	err  error
}

func (r *recordingNotifier) Show(req Request) error {
	if r.err != nil {
		return r.err
	}
	r.reqs = append(r.reqs, req)
	return nil
}

func TestNotificationBuilder(t *testing.T) {
	rec := &recordingNotifier{}
	err := New("com.example.app").
		Title("New message").
		Body("You've got a new message.").
		Icon("mail-unread").
		Via(rec).
		Show()
	require.NoError(t, err)

	require.Len(t, rec.reqs, 1)
	req := rec.reqs[0]
	assert.Equal(t, "com.example.app", req.Identifier)
	assert.Equal(t, "New message", req.Title)
	assert.Equal(t, "You've got a new message.", req.Body)
	assert.Equal(t, "mail-unread", req.Icon)
}

func TestNotificationShowError(t *testing.T) {
	// Delivery failure is surfaced, not swallowed.
	rec := &recordingNotifier{err: errors.New("service unavailable")}
	err := New("com.example.app").Body("hi").Via(rec).Show()
	assert.Error(t, err)
}

func TestGeneratedIdentifier(t *testing.T) {
	rec := &recordingNotifier{}
	require.NoError(t, New("").Via(rec).Show())
	require.Len(t, rec.reqs, 1)
	assert.NotEmpty(t, rec.reqs[0].Identifier)
}

func TestAppIDFor(t *testing.T) {
	installed := filepath.Join("/opt", "example", "bin", "example")
	assert.Equal(t, "com.example.app", appIDFor("com.example.app", installed))

	dev := filepath.Join("/home", "u", ".cache", "go-build", "b001", "exe", "example")
	assert.Equal(t, "", appIDFor("com.example.app", dev))

	tmp := filepath.Join("/u", "AppData", "Local", "Temp", "example")
	assert.Equal(t, "", appIDFor("com.example.app", tmp))

	// marker fragments inside a path element are not dev builds
	tempered := filepath.Join("/opt", "Tempered", "bin", "example")
	assert.Equal(t, "com.example.app", appIDFor("com.example.app", tempered))
}

func TestToastAppID(t *testing.T) {
	req := Request{Identifier: "com.example.app", AppID: "com.example.app"}
	assert.Equal(t, "com.example.app", toastAppID(req))

	// dev builds carry no computed AppID; deliver under the raw
	// identifier so the toast still renders
	req.AppID = ""
	assert.Equal(t, "com.example.app", toastAppID(req))

	req.Identifier = "generated-id"
	assert.Equal(t, "generated-id", toastAppID(req))
}
