// server/internal/models/user.go
package models

// User struct matches the document in MongoDB
type User struct {
	Base      `bson:",inline"`
	UserID    string  `bson:"userId" json:"userId"` // allocated, e.g. "USER1"
	FirstName string  `bson:"firstName" json:"firstName"`
	LastName  string  `bson:"lastName" json:"lastName"`
	Username  string  `bson:"username" json:"username"`
	Email     string  `bson:"email" json:"email"`
	Password  string  `bson:"password" json:"-"` // bcrypt hash
	Location  string  `bson:"location" json:"location"`
	Status    string  `bson:"status" json:"status"`
	Points    float64 `bson:"points" json:"points"`
}
