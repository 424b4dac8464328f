package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"kitchenrent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommitTransactionally flips every requested availability from free to taken
// and stores the reservation in one transaction. If any hour was taken in the
// meantime nothing is written and ErrSlotTaken is returned.
func (repo *MongoReservationRepo) CommitTransactionally(ctx context.Context, reservation *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := repo.reservationColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"id":        bson.M{"$in": reservation.AvailableIDs},
			"kitchenId": reservation.KitchenID,
			"date":      reservation.Date,
			"status":    false,
		}
		update := bson.M{
			"$set": bson.M{
				"status":        true,
				"reservationId": reservation.ID,
			},
		}

		res, err := repo.availabilityColl.UpdateMany(sc, filter, update)
		if err != nil {
			return fmt.Errorf("reserve availability failed: %w", err)
		}
		if res.ModifiedCount != int64(len(reservation.AvailableIDs)) {
			return ErrSlotTaken
		}

		if _, err := repo.reservationColl.InsertOne(sc, reservation); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrDuplicateIntent
			}
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("reservation transaction failed: %w", err)
	}

	return nil
}
