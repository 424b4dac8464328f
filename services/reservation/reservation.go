package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchenrent/models"
	"kitchenrent/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidCommit = errors.New("invalid reservation request")

// CommitReservation books every hour of the request in one transaction.
func (s *DefaultReservationService) CommitReservation(ctx context.Context, req models.CommitRequest) (*models.Reservation, error) {
	if err := validateCommit(req); err != nil {
		return nil, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	res := &models.Reservation{
		ID:           uuid.New().String(),
		IntentID:     req.IntentID,
		KitchenID:    req.KitchenID,
		UserID:       req.UserID,
		Date:         req.Date,
		StartHour:    req.StartHour,
		EndHour:      req.EndHour,
		AvailableIDs: req.AvailableIDs,
		GuestCount:   req.GuestCount,
		TotalPrice:   req.TotalPrice,
		Status:       models.ReservationStatusConfirmed,
		CreatedAt:    now().UTC(),
	}

	logger := utils.GetLogger()
	if err := s.Repo.CommitTransactionally(ctx, res); err != nil {
		logger.Warn("reservation commit failed",
			zap.String("intentID", req.IntentID), zap.String("kitchenID", req.KitchenID), zap.Error(err))
		return nil, err
	}

	logger.Info("reservation committed",
		zap.String("reservationID", res.ID), zap.String("intentID", req.IntentID),
		zap.String("kitchenID", req.KitchenID), zap.String("date", req.Date),
		zap.Int("startHour", req.StartHour), zap.Int("endHour", req.EndHour))
	return res, nil
}

func validateCommit(req models.CommitRequest) error {
	switch {
	case req.IntentID == "":
		return fmt.Errorf("%w: missing intent id", ErrInvalidCommit)
	case req.UserID == "":
		return fmt.Errorf("%w: missing user", ErrInvalidCommit)
	case len(req.AvailableIDs) == 0:
		return fmt.Errorf("%w: no hours requested", ErrInvalidCommit)
	case len(req.AvailableIDs) != req.EndHour-req.StartHour:
		return fmt.Errorf("%w: %d ids for %d hours", ErrInvalidCommit, len(req.AvailableIDs), req.EndHour-req.StartHour)
	}

	seen := make(map[string]struct{}, len(req.AvailableIDs))
	for _, id := range req.AvailableIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate availability id %s", ErrInvalidCommit, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// ListForUser returns the requester's reservations, newest first.
func (s *DefaultReservationService) ListForUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	list, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	if list == nil {
		list = []models.Reservation{}
	}
	return list, nil
}
