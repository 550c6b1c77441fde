//go:build windows

package notify

import "github.com/go-toast/toast"

// toastNotifier delivers Windows toast notifications, tagged with the
// application identity computed in Show.
type toastNotifier struct{}

func (toastNotifier) Show(req Request) error {
	n := toast.Notification{
		AppID:   toastAppID(req),
		Title:   req.Title,
		Message: req.Body,
		Icon:    req.Icon,
	}
	return n.Push()
}

func platformNotifier() Notifier {
	return toastNotifier{}
}
