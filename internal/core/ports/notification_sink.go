package ports

import (
	"context"

	"tracker/internal/core/domain/model/kernel"
)

// Notification is a push message addressed either to every user of one area
// or to a single user.
type Notification struct {
	// Area is the destination area whose users receive the message. Empty
	// when the notification targets a single user.
	Area kernel.Area

	// UserID, when set, addresses the message to one user instead of an
	// area.
	UserID string

	// Title is the short headline shown by the platform.
	Title string

	// Body is the message text.
	Body string

	// UnitID, when set, lets the client deep-link into the unit.
	UnitID string
}

// NotificationSink delivers notifications to area users. Delivery is
// best-effort and asynchronous: use cases emit after commit and never fail
// on delivery problems.
type NotificationSink interface {
	// Emit queues a notification for delivery. Never blocks on the actual
	// sends.
	Emit(ctx context.Context, notification Notification)
}
