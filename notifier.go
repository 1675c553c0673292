package pagewatch

import "context"

// Notification describes a detected change for delivery to a page owner.
type Notification struct {
	User *User
	Page *TrackedPage

	Severity    Severity
	ChangeRatio float64

	OldLength int
	NewLength int
}

// Notifier delivers change notifications. Delivery failures are logged by
// the caller and never abort a scheduling cycle.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
