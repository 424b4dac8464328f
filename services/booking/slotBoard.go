package booking

import "kitchenrent/models"

// BuildSlotBoard lays an availability response over the operating window.
// The board always holds window.NumSlots() slots. Slots past the end of a
// short response stay unknown and cannot be selected; extra records are ignored.
func BuildSlotBoard(window models.OperatingWindow, records []models.AvailabilityRecord) []models.Slot {
	n := window.NumSlots()
	if n <= 0 {
		return nil
	}

	board := make([]models.Slot, n)
	for i := range board {
		slot := models.Slot{Index: i, HourStart: window.OpenHour + i}
		if i < len(records) {
			rec := records[i]
			if rec.AvailableID != "" {
				id := rec.AvailableID
				slot.SlotID = &id
			}
			slot.Taken = rec.Status
		}
		slot.State = slotState(slot)
		board[i] = slot
	}
	return board
}

func slotState(s models.Slot) string {
	switch {
	case s.Taken:
		return models.SlotTaken
	case s.SlotID != nil:
		return models.SlotAvailable
	default:
		return models.SlotUnknown
	}
}
