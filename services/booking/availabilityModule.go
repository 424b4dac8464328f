package booking

import (
	"context"
	"fmt"

	availabilityRepo "kitchenrent/database/repository/availability"
	"kitchenrent/models"

	"go.uber.org/zap"
)

// RepoAvailabilitySource answers availability queries from the availability
// collection. The first query for an enabled weekday creates that day's
// hourly records from the kitchen's operating window.
type RepoAvailabilitySource struct {
	Kitchens KitchenCatalogue
	Repo     availabilityRepo.AvailabilityRepository
	Logger   *zap.Logger
}

func (a *RepoAvailabilitySource) FetchAvailability(ctx context.Context, kitchenID, date string) ([]models.AvailabilityRecord, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	kitchen, err := a.Kitchens.GetByID(ctx, kitchenID)
	if err != nil {
		return nil, fmt.Errorf("failed to load kitchen %s: %w", kitchenID, err)
	}

	docs, err := a.Repo.GetByKitchenAndDate(ctx, kitchenID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}

	if len(docs) == 0 {
		if p, ok := kitchen.Prices.ForWeekday(day.Weekday()); !ok || !p.Enabled {
			return nil, nil
		}
		if err := a.Repo.CreateMany(ctx, materialiseDay(kitchen, date)); err != nil {
			return nil, fmt.Errorf("failed to open availability for %s: %w", date, err)
		}
		a.logger().Info("opened availability",
			zap.String("kitchenID", kitchenID), zap.String("date", date), zap.Int("slots", kitchen.Window.NumSlots()))

		if docs, err = a.Repo.GetByKitchenAndDate(ctx, kitchenID, date); err != nil {
			return nil, fmt.Errorf("failed to fetch availability: %w", err)
		}
	}

	return toRecords(kitchen.Window, docs), nil
}

func (a *RepoAvailabilitySource) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func materialiseDay(kitchen *models.Kitchen, date string) []models.Availability {
	n := kitchen.Window.NumSlots()
	slots := make([]models.Availability, 0, n)
	for i := 0; i < n; i++ {
		slots = append(slots, models.Availability{
			KitchenID: kitchen.ID,
			Date:      date,
			Hour:      kitchen.Window.OpenHour + i,
		})
	}
	return slots
}

// toRecords maps hour-sorted documents onto the window, stopping at the first
// missing hour so record i always describes slot i.
func toRecords(window models.OperatingWindow, docs []models.Availability) []models.AvailabilityRecord {
	records := make([]models.AvailabilityRecord, 0, window.NumSlots())
	next := window.OpenHour
	for _, doc := range docs {
		if doc.Hour < next {
			continue
		}
		if doc.Hour != next || next >= window.CloseHour {
			break
		}
		records = append(records, models.AvailabilityRecord{AvailableID: doc.ID, Status: doc.Status})
		next++
	}
	return records
}
