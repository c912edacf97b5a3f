// server/internal/models/common.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Base carries the store-assigned document id shared by every collection.
type Base struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
}

func (b *Base) DocumentID() primitive.ObjectID { return b.ID }

func (b *Base) SetDocumentID(id primitive.ObjectID) { b.ID = id }

// Collection names.
const (
	BinCollection        = "Bins"
	DriverCollection     = "Drivers"
	ScheduleCollection   = "Schedules"
	CollectionCollection = "Collectors"
	PaymentCollection    = "Payments"
	UserCollection       = "Users"
	CounterCollection    = "counters"
)

// Status values assigned on creation.
const (
	BinStatusEmpty   = "ISEMPTY"
	UserStatusActive = "Active"
)
