package models

// BookingIntent is the finalized selection awaiting confirmation.
type BookingIntent struct {
	IntentID     string    `json:"intentId"`
	KitchenID    string    `json:"kitchenId"`
	Date         string    `json:"date"`
	Selection    Selection `json:"selection"`
	StartHour    int       `json:"startHour"`
	EndHour      int       `json:"endHour"` // exclusive
	AvailableIDs []string  `json:"availableIds"`
	GuestCount   int       `json:"guestCount"`
	TotalPrice   int64     `json:"totalPrice"`
}
