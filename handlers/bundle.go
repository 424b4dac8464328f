package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking session endpoints
	OpenSession        gin.HandlerFunc
	GetSession         gin.HandlerFunc
	SelectDate         gin.HandlerFunc
	SetGuestCount      gin.HandlerFunc
	ToggleSlot         gin.HandlerFunc
	BeginBooking       gin.HandlerFunc
	AttestNotification gin.HandlerFunc
	CancelBooking      gin.HandlerFunc
	CloseSession       gin.HandlerFunc

	// Reservation endpoints
	ListMyReservations gin.HandlerFunc

	Health gin.HandlerFunc
}

// NewHandlerBundle wires the handler methods into a bundle.
func NewHandlerBundle(bh *BookingHandler, rh *ReservationHandler) *HandlerBundle {
	return &HandlerBundle{
		OpenSession:        bh.OpenSessionHandler,
		GetSession:         bh.GetSessionHandler,
		SelectDate:         bh.SelectDateHandler,
		SetGuestCount:      bh.SetGuestCountHandler,
		ToggleSlot:         bh.ToggleSlotHandler,
		BeginBooking:       bh.BeginBookingHandler,
		AttestNotification: bh.AttestNotificationHandler,
		CancelBooking:      bh.CancelBookingHandler,
		CloseSession:       bh.CloseSessionHandler,
		ListMyReservations: rh.ListMyReservationsHandler,
		Health:             HealthHandler,
	}
}
