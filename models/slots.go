package models

// AvailabilityRecord is one hourly entry returned by the availability query.
// Status true means the hour is unavailable.
type AvailabilityRecord struct {
	AvailableID string `json:"availableId"`
	Status      bool   `json:"status"`
}

// Availability is the stored per-hour availability document of a kitchen.
type Availability struct {
	ID            string `bson:"id" json:"id"`
	KitchenID     string `bson:"kitchenId" json:"kitchenId"`
	Date          string `bson:"date" json:"date"` // e.g., "2025-02-25"
	Hour          int    `bson:"hour" json:"hour"` // hour of day the slot starts
	Status        bool   `bson:"status" json:"status"`
	ReservationID string `bson:"reservationId,omitempty" json:"reservationId,omitempty"`
}

// Slot states shown on the board.
const (
	SlotAvailable = "available"
	SlotTaken     = "taken"
	SlotUnknown   = "unknown"
)

// Slot is one hourly block of the slot board.
type Slot struct {
	Index     int     `json:"index"`
	HourStart int     `json:"hourStart"`
	SlotID    *string `json:"slotId"` // nil until availability is known
	Taken     bool    `json:"taken"`
	State     string  `json:"state"`
}

// Selectable reports whether the slot can be part of a selection.
func (s Slot) Selectable() bool {
	return s.SlotID != nil && !s.Taken
}

// Selection is the contiguous range of slots picked by the user.
// Both ends are nil when nothing is selected.
type Selection struct {
	Start *int `json:"startIndex"`
	End   *int `json:"endIndex"`
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.Start == nil || s.End == nil
}

// Len is the number of selected slots.
func (s Selection) Len() int {
	if s.Empty() {
		return 0
	}
	return *s.End - *s.Start + 1
}
