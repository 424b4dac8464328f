package reservation

import (
	"context"
	"time"

	reservationRepo "kitchenrent/database/repository/reservation"
	"kitchenrent/models"
)

type ReservationService interface {
	CommitReservation(ctx context.Context, req models.CommitRequest) (*models.Reservation, error)
	ListForUser(ctx context.Context, userID string) ([]models.Reservation, error)
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	Repo reservationRepo.ReservationRepository
	Now  func() time.Time
}
