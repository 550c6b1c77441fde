//go:build !windows

package notify

import "github.com/gen2brain/beeep"

// beeepNotifier delivers through the system notification service via
// the beeep package.
type beeepNotifier struct{}

func (beeepNotifier) Show(req Request) error {
	return beeep.Notify(req.Title, req.Body, req.Icon)
}

func platformNotifier() Notifier {
	return beeepNotifier{}
}
