// server/internal/models/driver.go
package models

type Driver struct {
	Base       `bson:",inline"`
	DriverID   string `bson:"driverId" json:"driverId"` // caller supplied
	DriverName string `bson:"driverName" json:"driverName"`
	Available  bool   `bson:"available" json:"available"`
}
