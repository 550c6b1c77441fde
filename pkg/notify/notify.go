// Package notify builds and dispatches desktop notifications.
package notify

import (
	"runtime"

	"github.com/rs/xid"
)

// Request is the assembled notification handed to a Notifier.
type Request struct {
	// Identifier names the sending application, usually in
	// reverse-DNS form.
	Identifier string
	Title      string
	Body       string
	Icon       string

	// AppID is the application identity tag to attach on Windows.
	// Empty for unpackaged dev builds and on other platforms.
	AppID string
}

// Notifier delivers a built notification to the platform notification
// service.
type Notifier interface {
	Show(req Request) error
}

// Notification is a desktop notification under construction.
type Notification struct {
	req      Request
	notifier Notifier
}

// New starts a notification for the application with the given
// identifier. An empty identifier gets a generated one.
func New(identifier string) *Notification {
	if identifier == "" {
		identifier = xid.New().String()
	}
	return &Notification{
		req:      Request{Identifier: identifier},
		notifier: platformNotifier(),
	}
}

// Title sets the notification title.
func (n *Notification) Title(title string) *Notification {
	n.req.Title = title
	return n
}

// Body sets the notification body.
func (n *Notification) Body(body string) *Notification {
	n.req.Body = body
	return n
}

// Icon sets the notification icon, given as a path or a themed icon
// name understood by the platform service.
func (n *Notification) Icon(icon string) *Notification {
	n.req.Icon = icon
	return n
}

// Via routes the notification through an alternate backend.
func (n *Notification) Via(notifier Notifier) *Notification {
	n.notifier = notifier
	return n
}

// Show dispatches the notification and reports the delivery error to
// the caller.
func (n *Notification) Show() error {
	req := n.req
	if runtime.GOOS == "windows" {
		req.AppID = appID(req.Identifier)
	}
	return n.notifier.Show(req)
}
