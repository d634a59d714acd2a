package repositories

import "context"

// Notification addresses an outbound mail to one account.
type Notification struct {
	To   string
	Name string
}

// Notifier is the fire-and-forget mail side channel. Callers dispatch
// after commit and never fail a request on a send error.
type Notifier interface {
	NotifyApproved(ctx context.Context, n Notification) error
	NotifyRejected(ctx context.Context, n Notification) error
}
