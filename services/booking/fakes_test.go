package booking

import (
	"context"
	"sync"

	"kitchenrent/models"
)

var tuesday = "2025-03-04"
var wednesday = "2025-03-05"
var sunday = "2025-03-02"

func testKitchen() *models.Kitchen {
	prices := models.PriceTable{{Day: "Sunday", Enabled: false, HourlyRate: 20000}}
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"} {
		prices = append(prices, models.DayPrice{Day: day, Enabled: true, HourlyRate: 20000})
	}
	return &models.Kitchen{
		ID:          "kitchen-1",
		HostID:      "host-1",
		Name:        "Sunny Kitchen",
		Window:      models.OperatingWindow{OpenHour: 9, CloseHour: 18},
		Prices:      prices,
		MaxGuests:   8,
		BankAccount: models.BankAccount{BankName: "Kookmin", AccountNumber: "123-456", Holder: "Kim"},
		HostChatID:  42,
	}
}

func openRecords(n int, prefix string) []models.AvailabilityRecord {
	records := make([]models.AvailabilityRecord, n)
	for i := range records {
		records[i] = models.AvailabilityRecord{AvailableID: prefix + string(rune('a'+i))}
	}
	return records
}

func consumer() *models.Credentials {
	return &models.Credentials{UserID: "user-1", Role: models.RoleConsumer}
}

type fakeSource struct {
	mu      sync.Mutex
	records map[string][]models.AvailabilityRecord
	err     error
	gates   map[string]chan struct{}
	started chan string
	calls   []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		records: make(map[string][]models.AvailabilityRecord),
		gates:   make(map[string]chan struct{}),
		started: make(chan string, 16),
	}
}

func (f *fakeSource) FetchAvailability(ctx context.Context, kitchenID, date string) ([]models.AvailabilityRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, date)
	gate := f.gates[date]
	f.mu.Unlock()

	select {
	case f.started <- date:
	default:
	}
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.records[date], nil
}

func (f *fakeSource) setRecords(date string, records []models.AvailabilityRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[date] = records
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeAccounts struct {
	name    string
	err     error
	gate    chan struct{}
	started chan struct{}
}

func (f *fakeAccounts) GetDisplayName(ctx context.Context, userID string) (string, error) {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return "", f.err
	}
	return f.name, nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	notices []models.PaymentNotice
	err     error
}

func (f *fakeNotifier) Dispatch(ctx context.Context, notice models.PaymentNotice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, notice)
	return f.err
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notices)
}

type fakeCommitter struct {
	mu      sync.Mutex
	reqs    []models.CommitRequest
	err     error
	gate    chan struct{}
	started chan struct{}
}

func (f *fakeCommitter) CommitReservation(ctx context.Context, req models.CommitRequest) (*models.Reservation, error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.Reservation{
		ID:           "res-" + req.IntentID,
		IntentID:     req.IntentID,
		KitchenID:    req.KitchenID,
		UserID:       req.UserID,
		Date:         req.Date,
		AvailableIDs: req.AvailableIDs,
		TotalPrice:   req.TotalPrice,
		Status:       models.ReservationStatusConfirmed,
	}, nil
}

func (f *fakeCommitter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reqs)
}

type fakeKitchens struct {
	kitchens map[string]*models.Kitchen
	err      error
}

func (f *fakeKitchens) GetByID(ctx context.Context, id string) (*models.Kitchen, error) {
	if f.err != nil {
		return nil, f.err
	}
	k, ok := f.kitchens[id]
	if !ok {
		return nil, errKitchenMissing
	}
	return k, nil
}

type testError string

func (e testError) Error() string { return string(e) }

const errKitchenMissing = testError("kitchen not found")
