package booking

import (
	"context"
	"errors"
	"testing"

	"kitchenrent/models"
)

type fakeAvailabilityRepo struct {
	docs    map[string][]models.Availability
	created int
	err     error
}

func (f *fakeAvailabilityRepo) GetByKitchenAndDate(ctx context.Context, kitchenID, date string) ([]models.Availability, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.docs[kitchenID+"/"+date], nil
}

func (f *fakeAvailabilityRepo) CreateMany(ctx context.Context, slots []models.Availability) error {
	for i, s := range slots {
		if s.ID == "" {
			s.ID = s.Date + "-" + string(rune('a'+i))
		}
		key := s.KitchenID + "/" + s.Date
		f.docs[key] = append(f.docs[key], s)
	}
	f.created += len(slots)
	return nil
}

func (f *fakeAvailabilityRepo) EnsureIndexes(ctx context.Context) error { return nil }

func newRepoSource() (*RepoAvailabilitySource, *fakeAvailabilityRepo) {
	repo := &fakeAvailabilityRepo{docs: make(map[string][]models.Availability)}
	kitchens := &fakeKitchens{kitchens: map[string]*models.Kitchen{"kitchen-1": testKitchen()}}
	return &RepoAvailabilitySource{Kitchens: kitchens, Repo: repo}, repo
}

func TestRepoAvailabilitySource(t *testing.T) {
	ctx := context.Background()

	t.Run("opens an enabled day on first query", func(t *testing.T) {
		src, repo := newRepoSource()
		records, err := src.FetchAvailability(ctx, "kitchen-1", tuesday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 9 || repo.created != 9 {
			t.Fatalf("expected 9 materialised records, got %d (created %d)", len(records), repo.created)
		}
		for i, r := range records {
			if r.AvailableID == "" || r.Status {
				t.Errorf("record %d: expected free slot with id, got %+v", i, r)
			}
		}

		if _, err := src.FetchAvailability(ctx, "kitchen-1", tuesday); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.created != 9 {
			t.Errorf("expected no second materialisation, got %d created", repo.created)
		}
	})

	t.Run("disabled day stays empty", func(t *testing.T) {
		src, repo := newRepoSource()
		records, err := src.FetchAvailability(ctx, "kitchen-1", sunday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 || repo.created != 0 {
			t.Errorf("expected no records, got %d (created %d)", len(records), repo.created)
		}
	})

	t.Run("stops at the first missing hour", func(t *testing.T) {
		src, repo := newRepoSource()
		repo.docs["kitchen-1/"+tuesday] = []models.Availability{
			{ID: "a", Hour: 9},
			{ID: "b", Hour: 10, Status: true},
			{ID: "d", Hour: 12},
		}
		records, err := src.FetchAvailability(ctx, "kitchen-1", tuesday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 || !records[1].Status {
			t.Errorf("expected two records with the second taken, got %+v", records)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		src, repo := newRepoSource()
		repo.err = errors.New("mongo down")
		if _, err := src.FetchAvailability(ctx, "kitchen-1", tuesday); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("bad date", func(t *testing.T) {
		src, _ := newRepoSource()
		if _, err := src.FetchAvailability(ctx, "kitchen-1", "x"); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})
}
