// server/internal/models/collection_record.go
package models

import "time"

// CollectionRecord is one pickup of a bin.
type CollectionRecord struct {
	Base           `bson:",inline"`
	CollectorID    string    `bson:"collectorId" json:"collectorId"` // allocated, e.g. "COLL1"
	UserID         string    `bson:"userId" json:"userId"`
	BinID          string    `bson:"binId" json:"binId"`
	BinType        string    `bson:"binType" json:"binType"`
	DriverName     string    `bson:"driverName" json:"driverName"`
	CollectionDate time.Time `bson:"collectionDate" json:"collectionDate"`
}
