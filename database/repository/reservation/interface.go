// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"

	"kitchenrent/database"
	"kitchenrent/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrSlotTaken means at least one requested hour was booked by someone else.
	ErrSlotTaken = errors.New("one or more requested hours are no longer available")
	// ErrDuplicateIntent means the booking intent was already committed.
	ErrDuplicateIntent = errors.New("booking intent already committed")
)

type ReservationRepository interface {
	CommitTransactionally(ctx context.Context, reservation *models.Reservation) error
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	EnsureIndexes(ctx context.Context) error
}

type MongoReservationRepo struct {
	reservationColl  *mongo.Collection
	availabilityColl *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	db := database.Database()
	return &MongoReservationRepo{
		reservationColl:  db.Collection("reservations"),
		availabilityColl: db.Collection("availabilities"),
	}
}
