// server/internal/models/payment.go
package models

import "time"

type Payment struct {
	Base            `bson:",inline"`
	PaymentID       string    `bson:"paymentId" json:"paymentId"` // allocated, e.g. "PAY1"
	UserID          string    `bson:"userId" json:"userId"`
	PaymentAmount   float64   `bson:"paymentAmount" json:"paymentAmount"`
	PaymentDate     time.Time `bson:"paymentDate" json:"paymentDate"`
	NextPaymentDate time.Time `bson:"nextPaymentDate" json:"nextPaymentDate"` // one calendar month after PaymentDate
}
