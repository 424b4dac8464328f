package handlers

import (
	"net/http"
	"strconv"

	"kitchenrent/middleware"
	"kitchenrent/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking sessions over HTTP.
type BookingHandler struct {
	Svc booking.BookingSessionService
}

func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

type openSessionRequest struct {
	Date string `json:"date"`
}

type selectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type guestCountRequest struct {
	Guests *int `json:"guests" binding:"required"`
}

type attestRequest struct {
	Sent *bool `json:"sent" binding:"required"`
}

// OpenSessionHandler handles POST /api/kitchens/:kitchenId/sessions.
func (h *BookingHandler) OpenSessionHandler(c *gin.Context) {
	var req openSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": err.Error()})
			return
		}
	}

	kitchenID := c.Param("kitchenId")
	snap, err := h.Svc.OpenSession(c.Request.Context(), kitchenID, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("booking session opened", zap.String("sessionID", snap.SessionID), zap.String("kitchenID", kitchenID))
	c.JSON(http.StatusCreated, snap)
}

// GetSessionHandler handles GET /api/sessions/:sessionId.
func (h *BookingHandler) GetSessionHandler(c *gin.Context) {
	snap, err := h.Svc.GetSession(c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SelectDateHandler handles PUT /api/sessions/:sessionId/date.
func (h *BookingHandler) SelectDateHandler(c *gin.Context) {
	var req selectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": err.Error()})
		return
	}

	snap, err := h.Svc.SelectDate(c.Request.Context(), c.Param("sessionId"), req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SetGuestCountHandler handles PUT /api/sessions/:sessionId/guests.
func (h *BookingHandler) SetGuestCountHandler(c *gin.Context) {
	var req guestCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": err.Error()})
		return
	}

	snap, err := h.Svc.SetGuestCount(c.Param("sessionId"), *req.Guests)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ToggleSlotHandler handles POST /api/sessions/:sessionId/slots/:index/toggle.
func (h *BookingHandler) ToggleSlotHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_slot", "message": "slot index must be an integer"})
		return
	}

	snap, err := h.Svc.ToggleSlot(c.Param("sessionId"), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// BeginBookingHandler handles POST /api/sessions/:sessionId/booking.
func (h *BookingHandler) BeginBookingHandler(c *gin.Context) {
	snap, err := h.Svc.BeginBooking(c.Request.Context(), c.Param("sessionId"), middleware.CredentialsFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// AttestNotificationHandler handles POST /api/sessions/:sessionId/booking/attest.
func (h *BookingHandler) AttestNotificationHandler(c *gin.Context) {
	var req attestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_input", "message": err.Error()})
		return
	}

	snap, err := h.Svc.AttestNotification(c.Request.Context(), c.Param("sessionId"), middleware.CredentialsFrom(c), *req.Sent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// CancelBookingHandler handles DELETE /api/sessions/:sessionId/booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	snap, err := h.Svc.CancelBooking(c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// CloseSessionHandler handles DELETE /api/sessions/:sessionId.
func (h *BookingHandler) CloseSessionHandler(c *gin.Context) {
	if err := h.Svc.CloseSession(c.Param("sessionId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
