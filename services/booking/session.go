package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"kitchenrent/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionSnapshot is the client view of a booking session.
type SessionSnapshot struct {
	SessionID   string                 `json:"sessionId"`
	KitchenID   string                 `json:"kitchenId"`
	KitchenName string                 `json:"kitchenName"`
	Window      models.OperatingWindow `json:"window"`
	MaxGuests   int                    `json:"maxGuests,omitempty"`
	Date        string                 `json:"date,omitempty"`
	Loading     bool                   `json:"loading"`
	Board       []models.Slot          `json:"board"`
	BoardError  string                 `json:"boardError,omitempty"`
	Selection   models.Selection       `json:"selection"`
	GuestCount  int                    `json:"guestCount"`
	HourlyRate  int64                  `json:"hourlyRate"`
	TotalPrice  int64                  `json:"totalPrice"`
	Flow        *FlowSnapshot          `json:"flow,omitempty"`
}

// Session holds one kitchen's date, slot board, selection and guest count,
// plus at most one confirmation flow. Every date change bumps token; an
// availability response is applied only while its token is current.
type Session struct {
	ID      string
	kitchen *models.Kitchen
	source  AvailabilitySource
	deps    FlowDeps
	logger  *zap.Logger

	mu       sync.Mutex
	date     string
	day      time.Time
	token    uint64
	loading  bool
	board    []models.Slot
	boardErr error
	selector RangeSelector
	guests   int
	flow     *ConfirmationFlow
	lastSeen time.Time
}

// NewSession opens a session on a kitchen. The operating window must be valid.
func NewSession(kitchen *models.Kitchen, source AvailabilitySource, deps FlowDeps) (*Session, error) {
	if kitchen == nil {
		return nil, ErrInvalidKitchen
	}
	if err := kitchen.Window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKitchen, err)
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	id := uuid.New().String()
	return &Session{
		ID:       id,
		kitchen:  kitchen,
		source:   source,
		deps:     deps,
		logger:   deps.Logger.With(zap.String("sessionID", id), zap.String("kitchenID", kitchen.ID)),
		guests:   1,
		lastSeen: deps.Now(),
	}, nil
}

// SelectDate switches the session to another day. The board and selection
// are dropped before availability is fetched. When a newer date is chosen
// while the fetch is pending, the older response is discarded.
func (s *Session) SelectDate(ctx context.Context, date string) error {
	day, err := ParseDate(date)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.flowActiveLocked() {
		s.mu.Unlock()
		return ErrFlowActive
	}
	s.date = date
	s.day = day
	token := s.resetBoardLocked()
	s.mu.Unlock()

	return s.refresh(ctx, token, date)
}

// resetBoardLocked clears the per-date state and starts a new fetch generation.
func (s *Session) resetBoardLocked() uint64 {
	s.touchLocked()
	s.token++
	s.board = nil
	s.boardErr = nil
	s.selector.Clear()
	s.loading = true
	return s.token
}

func (s *Session) refresh(ctx context.Context, token uint64, date string) error {
	records, err := s.source.FetchAvailability(ctx, s.kitchen.ID, date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.token || date != s.date {
		s.logger.Debug("discarding stale availability response",
			zap.String("date", date), zap.Uint64("token", token), zap.Uint64("current", s.token))
		return nil
	}
	s.loading = false
	if err != nil {
		s.boardErr = err
		s.logger.Warn("availability fetch failed", zap.String("date", date), zap.Error(err))
		return fmt.Errorf("failed to load availability for %s: %w", date, err)
	}
	s.board = BuildSlotBoard(s.kitchen.Window, records)
	return nil
}

// SetGuestCount changes the number of guests priced into the booking.
func (s *Session) SetGuestCount(guests int) error {
	if guests < 1 || (s.kitchen.MaxGuests > 0 && guests > s.kitchen.MaxGuests) {
		return fmt.Errorf("%w: %d (allowed 1..%s)", ErrInvalidGuests, guests, maxGuestsLabel(s.kitchen.MaxGuests))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if s.flowActiveLocked() {
		return ErrFlowActive
	}
	s.guests = guests
	return nil
}

func maxGuestsLabel(limit int) string {
	if limit <= 0 {
		return "unlimited"
	}
	return fmt.Sprint(limit)
}

// ToggleSlot applies a click on a slot of the board.
func (s *Session) ToggleSlot(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	if !s.boardReadyLocked() {
		return ErrBoardNotReady
	}
	if s.flowActiveLocked() {
		return ErrFlowActive
	}
	return s.selector.Toggle(s.board, index)
}

// BeginBooking freezes the selection into an intent and starts the
// confirmation flow for the given requester.
func (s *Session) BeginBooking(ctx context.Context, creds *models.Credentials) error {
	s.mu.Lock()
	s.touchLocked()

	if s.flowActiveLocked() {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	if !s.boardReadyLocked() {
		s.mu.Unlock()
		return ErrBoardNotReady
	}
	intent, err := s.buildIntentLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}

	flow := s.flow
	if flow == nil || flow.State().Terminal() {
		flow = NewConfirmationFlow(s.deps)
	}
	epoch, err := flow.start(creds, s.kitchen, intent)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.flow = flow
	s.mu.Unlock()

	s.logger.Info("booking started",
		zap.String("intentID", intent.IntentID), zap.String("userID", creds.UserID),
		zap.Int64("totalPrice", intent.TotalPrice))
	return flow.run(ctx, epoch)
}

func (s *Session) buildIntentLocked() (*models.BookingIntent, error) {
	ids, err := s.selector.availableIDs(s.board)
	if err != nil {
		return nil, err
	}
	sel := s.selector.Selection()
	start, end := *sel.Start, *sel.End

	return &models.BookingIntent{
		IntentID:     uuid.New().String(),
		KitchenID:    s.kitchen.ID,
		Date:         s.date,
		Selection:    sel,
		StartHour:    s.board[start].HourStart,
		EndHour:      s.board[end].HourStart + 1,
		AvailableIDs: ids,
		GuestCount:   s.guests,
		TotalPrice:   CalculatePrice(s.kitchen.Prices, s.day, start, end, s.guests),
	}, nil
}

// AttestNotification forwards the requester's answer to the flow. Once the
// commit has run, successfully or not, the selection is dropped and the
// current day's availability is fetched again.
func (s *Session) AttestNotification(ctx context.Context, creds *models.Credentials, sent bool) error {
	s.mu.Lock()
	s.touchLocked()
	flow := s.flow
	s.mu.Unlock()

	if flow == nil {
		return ErrInvalidTransition
	}

	err := flow.Attest(ctx, creds, sent)
	if !sent || (err != nil && !errors.Is(err, ErrCommitFailed)) {
		return err
	}

	s.mu.Lock()
	date := s.date
	token := s.resetBoardLocked()
	s.mu.Unlock()

	if rerr := s.refresh(ctx, token, date); rerr != nil {
		s.logger.Warn("availability refresh after commit failed", zap.Error(rerr))
	}
	return err
}

// CancelBooking aborts the running confirmation flow.
func (s *Session) CancelBooking() error {
	s.mu.Lock()
	s.touchLocked()
	flow := s.flow
	s.mu.Unlock()

	if flow == nil {
		return ErrInvalidTransition
	}
	return flow.Cancel()
}

// Snapshot returns the client view of the session.
func (s *Session) Snapshot() *SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &SessionSnapshot{
		SessionID:   s.ID,
		KitchenID:   s.kitchen.ID,
		KitchenName: s.kitchen.Name,
		Window:      s.kitchen.Window,
		MaxGuests:   s.kitchen.MaxGuests,
		Date:        s.date,
		Loading:     s.loading,
		Board:       append([]models.Slot(nil), s.board...),
		Selection:   s.selector.Selection(),
		GuestCount:  s.guests,
	}
	if s.boardErr != nil {
		snap.BoardError = s.boardErr.Error()
	}
	if s.date != "" {
		snap.HourlyRate = RateForWeekday(s.kitchen.Prices, s.day.Weekday())
	}
	if sel := snap.Selection; !sel.Empty() {
		snap.TotalPrice = CalculatePrice(s.kitchen.Prices, s.day, *sel.Start, *sel.End, s.guests)
	}
	if s.flow != nil {
		fs := s.flow.Snapshot()
		snap.Flow = &fs
	}
	return snap
}

// Expired reports whether the session saw no request within idle and has no
// commit in flight.
func (s *Session) Expired(now time.Time, idle time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow != nil && s.flow.Committing() {
		return false
	}
	return now.Sub(s.lastSeen) > idle
}

func (s *Session) boardReadyLocked() bool {
	return s.date != "" && !s.loading && s.boardErr == nil && len(s.board) > 0
}

func (s *Session) flowActiveLocked() bool {
	return s.flow != nil && s.flow.State().Active()
}

func (s *Session) touchLocked() {
	s.lastSeen = s.deps.Now()
}
