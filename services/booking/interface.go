package booking

import (
	"context"

	"kitchenrent/models"
)

// AvailabilitySource answers which hours of a kitchen's day are free.
// Records are ordered by hour, starting at the kitchen's opening hour.
type AvailabilitySource interface {
	FetchAvailability(ctx context.Context, kitchenID, date string) ([]models.AvailabilityRecord, error)
}

// KitchenCatalogue resolves kitchen metadata.
type KitchenCatalogue interface {
	GetByID(ctx context.Context, id string) (*models.Kitchen, error)
}

// AccountService resolves the requester's display name.
type AccountService interface {
	GetDisplayName(ctx context.Context, userID string) (string, error)
}

// ReservationCommitter books the intent's hours on the server.
type ReservationCommitter interface {
	CommitReservation(ctx context.Context, req models.CommitRequest) (*models.Reservation, error)
}

// BookingSessionService defines the interface for managing stateful booking sessions.
type BookingSessionService interface {
	OpenSession(ctx context.Context, kitchenID, date string) (*SessionSnapshot, error)
	GetSession(sessionID string) (*SessionSnapshot, error)
	SelectDate(ctx context.Context, sessionID, date string) (*SessionSnapshot, error)
	SetGuestCount(sessionID string, guests int) (*SessionSnapshot, error)
	ToggleSlot(sessionID string, index int) (*SessionSnapshot, error)
	BeginBooking(ctx context.Context, sessionID string, creds *models.Credentials) (*SessionSnapshot, error)
	AttestNotification(ctx context.Context, sessionID string, creds *models.Credentials, sent bool) (*SessionSnapshot, error)
	CancelBooking(sessionID string) (*SessionSnapshot, error)
	CloseSession(sessionID string) error
}
