// Package dto holds the request and response shapes of the HTTP API.
package dto

import "time"

type BinRequest struct {
	UserID   string `json:"userId" validate:"required"`
	BinType  string `json:"binType"`
	Capacity string `json:"capacity"`
}

type BinView struct {
	ID       string `json:"id"`
	BinID    string `json:"binId"`
	UserID   string `json:"userId"`
	BinType  string `json:"binType"`
	Capacity string `json:"capacity"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// StatusRequest carries a bin status in the body. A nil Status means none
// was sent; an empty one is a valid status.
type StatusRequest struct {
	Status *string `json:"status"`
}

type CollectionRequest struct {
	UserID         string    `json:"userId" validate:"required"`
	BinID          string    `json:"binId" validate:"required"`
	BinType        string    `json:"binType"`
	DriverName     string    `json:"driverName"`
	CollectionDate time.Time `json:"collectionDate" validate:"required"`
}

type CollectionView struct {
	ID             string    `json:"id"`
	CollectorID    string    `json:"collectorId"`
	UserID         string    `json:"userId"`
	BinID          string    `json:"binId"`
	BinType        string    `json:"binType"`
	DriverName     string    `json:"driverName"`
	CollectionDate time.Time `json:"collectionDate"`
}

// Driver is used both as request body and response.
type Driver struct {
	DriverID   string `json:"driverId" validate:"required"`
	DriverName string `json:"driverName"`
	Available  bool   `json:"available"`
}

// Schedule is used both as request body and response.
type Schedule struct {
	ScheduleID string   `json:"scheduleId" validate:"required"`
	SmartBins  []string `json:"smartBins"`
	DriverID   string   `json:"driverId"`
	Time       string   `json:"time"`
	Route      string   `json:"route"`
}

type PaymentRequest struct {
	UserID        string    `json:"userId" validate:"required"`
	PaymentAmount float64   `json:"paymentAmount"`
	PaymentDate   time.Time `json:"paymentDate" validate:"required"`
}

type PaymentView struct {
	ID              string    `json:"id"`
	PaymentID       string    `json:"paymentId"`
	UserID          string    `json:"userId"`
	PaymentAmount   float64   `json:"paymentAmount"`
	PaymentDate     time.Time `json:"paymentDate"`
	NextPaymentDate time.Time `json:"nextPaymentDate"`
}

type NextPaymentView struct {
	UserID          string `json:"userId"`
	PaymentID       string `json:"paymentId"`
	NextPaymentDate string `json:"nextPaymentDate"` // RFC 3339
}

type UserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Location  string `json:"location"`
}

type UserView struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
	Username string  `json:"username"`
	Location string  `json:"location"`
	Status   string  `json:"status"`
	Points   float64 `json:"points"`
}

type PointsRequest struct {
	Points *float64 `json:"points"`
}

type Credentials struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type ReportView struct {
	BinID       string           `json:"binId"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Counts      map[string]int64 `json:"counts"`
	URL         string           `json:"url,omitempty"`
}
