// Package events publishes domain events after successful writes.
package events

import "context"

// Subjects.
const (
	UserRegistered     = "users.registered"
	BinCreated         = "bins.created"
	BinStatusUpdated   = "bins.status_updated"
	CollectionRecorded = "collections.recorded"
	PaymentCreated     = "payments.created"
	ScheduleChanged    = "schedules.changed"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }
