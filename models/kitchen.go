package models

import (
	"fmt"
	"time"
)

// OperatingWindow is the fixed daily opening range of a kitchen, in whole hours.
type OperatingWindow struct {
	OpenHour  int `bson:"openHour" json:"openHour"`   // e.g., 9 for 09:00
	CloseHour int `bson:"closeHour" json:"closeHour"` // e.g., 18 for 18:00
}

// NumSlots is the number of hourly slots the window holds per day.
func (w OperatingWindow) NumSlots() int {
	return w.CloseHour - w.OpenHour
}

// Validate checks 0 <= open < close <= 24.
func (w OperatingWindow) Validate() error {
	if w.OpenHour < 0 || w.CloseHour > 24 {
		return fmt.Errorf("operating window hours must be within [0,24], got %d-%d", w.OpenHour, w.CloseHour)
	}
	if w.CloseHour <= w.OpenHour {
		return fmt.Errorf("operating window must close after it opens, got %d-%d", w.OpenHour, w.CloseHour)
	}
	return nil
}

// DayPrice is one weekday entry of a price table.
type DayPrice struct {
	Day        string `bson:"day" json:"day"` // "Sunday".."Saturday"
	Enabled    bool   `bson:"enabled" json:"enabled"`
	HourlyRate int64  `bson:"hourlyRate" json:"hourlyRate"`
}

// PriceTable holds one DayPrice per weekday, Sunday first.
type PriceTable []DayPrice

// ForWeekday returns the entry for the given weekday, if present.
func (pt PriceTable) ForWeekday(day time.Weekday) (DayPrice, bool) {
	name := day.String()
	for _, p := range pt {
		if p.Day == name {
			return p, true
		}
	}
	return DayPrice{}, false
}

// BankAccount is where guests wire the rental fee.
type BankAccount struct {
	BankName      string `bson:"bankName" json:"bankName"`
	AccountNumber string `bson:"accountNumber" json:"accountNumber"`
	Holder        string `bson:"holder" json:"holder"`
}

func (b BankAccount) String() string {
	if b.BankName == "" && b.AccountNumber == "" {
		return "(no bank account on file)"
	}
	return fmt.Sprintf("%s %s (%s)", b.BankName, b.AccountNumber, b.Holder)
}

// Kitchen is the metadata the booking engine needs about a listed kitchen.
type Kitchen struct {
	ID          string          `bson:"id" json:"id"`
	HostID      string          `bson:"hostId" json:"hostId"`
	Name        string          `bson:"name" json:"name"`
	Address     string          `bson:"address,omitempty" json:"address,omitempty"`
	Window      OperatingWindow `bson:"window" json:"window"`
	Prices      PriceTable      `bson:"prices" json:"prices"`
	MaxGuests   int             `bson:"maxGuests,omitempty" json:"maxGuests,omitempty"` // 0 = unlimited
	BankAccount BankAccount     `bson:"bankAccount" json:"bankAccount"`
	HostChatID  int64           `bson:"hostChatId,omitempty" json:"hostChatId,omitempty"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}
