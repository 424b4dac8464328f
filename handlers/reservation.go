package handlers

import (
	"net/http"

	"kitchenrent/middleware"
	"kitchenrent/services/reservation"

	"github.com/gin-gonic/gin"
)

// ReservationHandler lists committed reservations.
type ReservationHandler struct {
	Svc reservation.ReservationService
}

func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{Svc: svc}
}

// ListMyReservationsHandler handles GET /api/reservations.
func (h *ReservationHandler) ListMyReservationsHandler(c *gin.Context) {
	creds := middleware.CredentialsFrom(c)
	if creds == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Insufficient authorization", "loginUrl": middleware.LoginPath})
		return
	}

	list, err := h.Svc.ListForUser(c.Request.Context(), creds.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list})
}
