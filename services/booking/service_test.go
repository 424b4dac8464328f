package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"kitchenrent/models"
)

func newTestService(source *fakeSource) *DefaultBookingSessionService {
	kitchens := &fakeKitchens{kitchens: map[string]*models.Kitchen{"kitchen-1": testKitchen()}}
	return NewBookingSessionService(kitchens, source, FlowDeps{
		Accounts:  &fakeAccounts{name: "Jamie"},
		Notifier:  &fakeNotifier{},
		Committer: &fakeCommitter{},
	}, 30*time.Minute, nil)
}

func TestBookingSessionServiceLifecycle(t *testing.T) {
	source := newFakeSource()
	source.setRecords(tuesday, openRecords(9, "t-"))
	svc := newTestService(source)
	ctx := context.Background()

	snap, err := svc.OpenSession(ctx, "kitchen-1", tuesday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.SessionID == "" || snap.Date != tuesday || len(snap.Board) != 9 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	id := snap.SessionID

	if _, err := svc.ToggleSlot(id, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ToggleSlot(id, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, err = svc.SetGuestCount(id, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.TotalPrice != 180000 {
		t.Errorf("expected 180000, got %d", snap.TotalPrice)
	}

	if _, err := svc.BeginBooking(ctx, id, consumer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.AttestNotification(ctx, id, consumer(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, err = svc.AttestNotification(ctx, id, consumer(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Flow.State != FlowCommitted || snap.Flow.ResendCount != 1 {
		t.Errorf("unexpected flow: %+v", snap.Flow)
	}

	if err := svc.CloseSession(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetSession(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestBookingSessionServiceOpenErrors(t *testing.T) {
	svc := newTestService(newFakeSource())
	ctx := context.Background()

	if _, err := svc.OpenSession(ctx, "kitchen-1", "03/04/2025"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := svc.OpenSession(ctx, "missing", ""); !errors.Is(err, errKitchenMissing) {
		t.Errorf("expected wrapped kitchen lookup error, got %v", err)
	}
}

func TestBookingSessionServiceUnknownSession(t *testing.T) {
	svc := newTestService(newFakeSource())
	ctx := context.Background()

	calls := map[string]func() error{
		"get":    func() error { _, err := svc.GetSession("nope"); return err },
		"date":   func() error { _, err := svc.SelectDate(ctx, "nope", tuesday); return err },
		"guests": func() error { _, err := svc.SetGuestCount("nope", 2); return err },
		"toggle": func() error { _, err := svc.ToggleSlot("nope", 0); return err },
		"begin":  func() error { _, err := svc.BeginBooking(ctx, "nope", consumer()); return err },
		"attest": func() error { _, err := svc.AttestNotification(ctx, "nope", consumer(), true); return err },
		"cancel": func() error { _, err := svc.CancelBooking("nope"); return err },
		"close":  func() error { return svc.CloseSession("nope") },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); !errors.Is(err, ErrSessionNotFound) {
				t.Errorf("expected ErrSessionNotFound, got %v", err)
			}
		})
	}
}

func TestBookingSessionServiceSweepIdle(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeSource())
	svc.Flow.Now = func() time.Time { return now }

	snap, err := svc.OpenSession(context.Background(), "kitchen-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := svc.SweepIdle(now.Add(5 * time.Minute)); n != 0 {
		t.Errorf("expected nothing swept, got %d", n)
	}
	if n := svc.SweepIdle(now.Add(time.Hour)); n != 1 {
		t.Errorf("expected one session swept, got %d", n)
	}
	if _, err := svc.GetSession(snap.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected swept session to be gone, got %v", err)
	}
}

func TestSweepIdleDoesNotBlockRegistry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeSource())
	svc.Flow.Now = func() time.Time { return now }

	stuck, err := svc.OpenSession(context.Background(), "kitchen-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other, err := svc.OpenSession(context.Background(), "kitchen-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	held, err := svc.lookup(stuck.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	held.mu.Lock()

	swept := make(chan int, 1)
	go func() { swept <- svc.SweepIdle(now.Add(time.Hour)) }()

	looked := make(chan struct{})
	go func() {
		_, _ = svc.GetSession(other.SessionID)
		close(looked)
	}()
	waitSignal(t, looked)

	held.mu.Unlock()
	select {
	case n := <-swept:
		if n != 2 {
			t.Errorf("expected both sessions swept, got %d", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("sweep never finished")
	}
}
