// server/internal/models/bin.go
package models

type Bin struct {
	Base     `bson:",inline"`
	BinID    string `bson:"binId" json:"binId"`   // allocated, e.g. "BIN1"
	UserID   string `bson:"userId" json:"userId"` // external id of the owner
	BinType  string `bson:"binType" json:"binType"`
	Capacity string `bson:"capacity" json:"capacity"`
	Location string `bson:"location" json:"location"` // copied from the owner at creation
	Status   string `bson:"status" json:"status"`     // ISEMPTY on creation
}
