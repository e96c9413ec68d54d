package models

import "time"

// User is an account that can own bookings.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// GuestUser is the fallback identity used when a request carries no valid
// token. Guest bookings are owned collectively.
var GuestUser = User{ID: "guest", Username: "Guest"}
