// server/internal/models/schedule.go
package models

type Schedule struct {
	Base       `bson:",inline"`
	ScheduleID string   `bson:"scheduleId" json:"scheduleId"` // caller supplied
	SmartBins  []string `bson:"smartBins" json:"smartBins"`   // bin ids on the route
	DriverID   string   `bson:"driverId" json:"driverId"`
	Time       string   `bson:"time" json:"time"`
	Route      string   `bson:"route" json:"route"`
}
