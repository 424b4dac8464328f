package booking

import "kitchenrent/models"

// RangeSelector keeps a single contiguous range of selectable slots.
// The zero value has nothing selected.
type RangeSelector struct {
	active     bool
	start, end int
}

// Selection returns the current range.
func (r *RangeSelector) Selection() models.Selection {
	if !r.active {
		return models.Selection{}
	}
	start, end := r.start, r.end
	return models.Selection{Start: &start, End: &end}
}

// Clear drops the selection.
func (r *RangeSelector) Clear() {
	r.active = false
	r.start, r.end = 0, 0
}

// Toggle applies a click on the slot at index.
//
// With nothing selected a selectable slot becomes a single-slot range.
// Clicking the sole selected slot clears it. Clicking before the start
// restarts the selection at index. Clicking at or after the start extends
// or shrinks the end, unless a slot in between cannot be booked, in which
// case ErrRangeUnavailable is returned and nothing changes. A slot whose
// availability is unknown is never selected; clicking it does nothing.
func (r *RangeSelector) Toggle(board []models.Slot, index int) error {
	if index < 0 || index >= len(board) {
		return ErrInvalidSlotIndex
	}

	switch {
	case !r.active:
		r.startAt(board, index)
	case index == r.start && r.start == r.end:
		r.Clear()
	case index < r.start:
		r.Clear()
		r.startAt(board, index)
	case board[index].SlotID == nil:
	default:
		for i := r.start; i <= index; i++ {
			if !board[i].Selectable() {
				return ErrRangeUnavailable
			}
		}
		r.end = index
	}
	return nil
}

func (r *RangeSelector) startAt(board []models.Slot, index int) {
	if !board[index].Selectable() {
		return
	}
	r.active = true
	r.start, r.end = index, index
}

// availableIDs returns the slot ids covered by the selection, in hour order.
func (r *RangeSelector) availableIDs(board []models.Slot) ([]string, error) {
	if !r.active {
		return nil, ErrNoSelection
	}
	if r.end >= len(board) {
		return nil, ErrRangeUnavailable
	}
	ids := make([]string, 0, r.end-r.start+1)
	for i := r.start; i <= r.end; i++ {
		if !board[i].Selectable() {
			return nil, ErrRangeUnavailable
		}
		ids = append(ids, *board[i].SlotID)
	}
	return ids, nil
}
