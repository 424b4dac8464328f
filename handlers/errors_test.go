package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	kitchenRepo "kitchenrent/database/repository/kitchen"
	reservationRepo "kitchenrent/database/repository/reservation"
	"kitchenrent/services/booking"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown session", booking.ErrSessionNotFound, http.StatusNotFound},
		{"unknown kitchen", fmt.Errorf("failed to load kitchen k: %w", kitchenRepo.ErrKitchenNotFound), http.StatusNotFound},
		{"login required", booking.ErrAuthRequired, http.StatusUnauthorized},
		{"bad date", fmt.Errorf("%w %q", booking.ErrInvalidDate, "x"), http.StatusBadRequest},
		{"range unavailable", booking.ErrRangeUnavailable, http.StatusConflict},
		{"commit in flight", booking.ErrCommitInFlight, http.StatusConflict},
		{"slot taken at commit", fmt.Errorf("%w: %w", booking.ErrCommitFailed, reservationRepo.ErrSlotTaken), http.StatusConflict},
		{"commit store down", fmt.Errorf("%w: %w", booking.ErrCommitFailed, errors.New("timeout")), http.StatusBadGateway},
		{"identity lookup", fmt.Errorf("%w: %w", booking.ErrIdentityLookup, errors.New("down")), http.StatusBadGateway},
		{"anything else", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := statusFor(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
