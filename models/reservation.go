package models

import "time"

const (
	ReservationStatusConfirmed = "confirmed"
)

// Reservation is a committed kitchen booking.
type Reservation struct {
	ID           string    `bson:"id" json:"id"`
	IntentID     string    `bson:"intentId" json:"intentId"`
	KitchenID    string    `bson:"kitchenId" json:"kitchenId"`
	UserID       string    `bson:"userId" json:"userId"`
	Date         string    `bson:"date" json:"date"`
	StartHour    int       `bson:"startHour" json:"startHour"`
	EndHour      int       `bson:"endHour" json:"endHour"` // exclusive
	AvailableIDs []string  `bson:"availableIds" json:"availableIds"`
	GuestCount   int       `bson:"guestCount" json:"guestCount"`
	TotalPrice   int64     `bson:"totalPrice" json:"totalPrice"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// CommitRequest asks the reservation store to book the given availability ids.
type CommitRequest struct {
	IntentID     string
	KitchenID    string
	UserID       string
	Date         string
	StartHour    int
	EndHour      int
	AvailableIDs []string
	GuestCount   int
	TotalPrice   int64
}
