package handlers

import (
	"errors"
	"net/http"

	kitchenRepo "kitchenrent/database/repository/kitchen"
	reservationRepo "kitchenrent/database/repository/reservation"
	"kitchenrent/middleware"
	"kitchenrent/services/booking"
	"kitchenrent/services/reservation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorStatus struct {
	err    error
	status int
	code   string
}

// Ordered: wrapped commit failures must match their cause before ErrCommitFailed.
var errorStatuses = []errorStatus{
	{booking.ErrSessionNotFound, http.StatusNotFound, "session_not_found"},
	{kitchenRepo.ErrKitchenNotFound, http.StatusNotFound, "kitchen_not_found"},
	{booking.ErrAuthRequired, http.StatusUnauthorized, "login_required"},
	{booking.ErrInvalidDate, http.StatusBadRequest, "invalid_date"},
	{booking.ErrInvalidGuests, http.StatusBadRequest, "invalid_guests"},
	{booking.ErrInvalidSlotIndex, http.StatusBadRequest, "invalid_slot"},
	{booking.ErrNoSelection, http.StatusBadRequest, "no_selection"},
	{booking.ErrInvalidKitchen, http.StatusUnprocessableEntity, "kitchen_not_bookable"},
	{reservation.ErrInvalidCommit, http.StatusUnprocessableEntity, "invalid_reservation"},
	{booking.ErrRangeUnavailable, http.StatusConflict, "range_unavailable"},
	{booking.ErrBoardNotReady, http.StatusConflict, "board_not_ready"},
	{booking.ErrFlowActive, http.StatusConflict, "booking_in_progress"},
	{booking.ErrFlowBusy, http.StatusConflict, "booking_busy"},
	{booking.ErrFlowCancelled, http.StatusConflict, "booking_cancelled"},
	{booking.ErrCommitInFlight, http.StatusConflict, "commit_in_flight"},
	{booking.ErrInvalidTransition, http.StatusConflict, "invalid_step"},
	{reservationRepo.ErrSlotTaken, http.StatusConflict, "slot_taken"},
	{reservationRepo.ErrDuplicateIntent, http.StatusConflict, "already_booked"},
	{booking.ErrCommitFailed, http.StatusBadGateway, "reservation_failed"},
	{booking.ErrIdentityLookup, http.StatusBadGateway, "account_lookup_failed"},
}

func statusFor(err error) (int, string) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status, es.code
		}
	}
	return http.StatusInternalServerError, "internal_error"
}

// respondError writes the error body used by every booking endpoint.
func respondError(c *gin.Context, err error) {
	status, code := statusFor(err)
	body := gin.H{"error": code, "message": err.Error()}
	if status == http.StatusUnauthorized {
		body["loginUrl"] = middleware.LoginPath
	}

	logger := getLogger(c)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.String("path", c.FullPath()), zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, body)
}
