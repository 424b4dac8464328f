package models

// PaymentNotice carries everything needed to tell a guest how to pay for a booking.
type PaymentNotice struct {
	IntentID      string      `json:"intentId"`
	KitchenName   string      `json:"kitchenName"`
	RequesterID   string      `json:"requesterId"`
	RequesterName string      `json:"requesterName"`
	Date          string      `json:"date"`
	StartHour     int         `json:"startHour"`
	EndHour       int         `json:"endHour"`
	GuestCount    int         `json:"guestCount"`
	TotalPrice    int64       `json:"totalPrice"`
	BankAccount   BankAccount `json:"bankAccount"`
	HostChatID    int64       `json:"hostChatId,omitempty"`
	Message       string      `json:"message"`
}
