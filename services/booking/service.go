package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"kitchenrent/models"

	"go.uber.org/zap"
)

// DefaultBookingSessionService implements BookingSessionService with an
// in-memory registry of sessions.
type DefaultBookingSessionService struct {
	Kitchens     KitchenCatalogue
	Availability AvailabilitySource
	Flow         FlowDeps
	IdleTimeout  time.Duration
	Logger       *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewBookingSessionService wires the session registry.
func NewBookingSessionService(kitchens KitchenCatalogue, availability AvailabilitySource, flow FlowDeps, idle time.Duration, logger *zap.Logger) *DefaultBookingSessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if flow.Logger == nil {
		flow.Logger = logger
	}
	if flow.Now == nil {
		flow.Now = time.Now
	}
	return &DefaultBookingSessionService{
		Kitchens:     kitchens,
		Availability: availability,
		Flow:         flow,
		IdleTimeout:  idle,
		Logger:       logger,
		sessions:     make(map[string]*Session),
	}
}

// OpenSession starts a session on the kitchen. A non-empty date is selected
// right away; an availability failure then shows up in the snapshot only.
func (s *DefaultBookingSessionService) OpenSession(ctx context.Context, kitchenID, date string) (*SessionSnapshot, error) {
	if date != "" {
		if _, err := ParseDate(date); err != nil {
			return nil, err
		}
	}

	kitchen, err := s.Kitchens.GetByID(ctx, kitchenID)
	if err != nil {
		return nil, fmt.Errorf("failed to load kitchen %s: %w", kitchenID, err)
	}

	session, err := NewSession(kitchen, s.Availability, s.Flow)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.Logger.Info("booking session opened", zap.String("sessionID", session.ID), zap.String("kitchenID", kitchenID))

	if date != "" {
		if err := session.SelectDate(ctx, date); err != nil {
			s.Logger.Warn("initial date selection failed", zap.String("sessionID", session.ID), zap.Error(err))
		}
	}
	return session.Snapshot(), nil
}

func (s *DefaultBookingSessionService) lookup(sessionID string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// GetSession returns the current snapshot of a session.
func (s *DefaultBookingSessionService) GetSession(sessionID string) (*SessionSnapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

// SelectDate switches the session to another day and loads its availability.
func (s *DefaultBookingSessionService) SelectDate(ctx context.Context, sessionID, date string) (*SessionSnapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.SelectDate(ctx, date); err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

func (s *DefaultBookingSessionService) SetGuestCount(sessionID string, guests int) (*SessionSnapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.SetGuestCount(guests); err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

func (s *DefaultBookingSessionService) ToggleSlot(sessionID string, index int) (*SessionSnapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.ToggleSlot(index); err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

// BeginBooking starts the confirmation flow for the current selection.
func (s *DefaultBookingSessionService) BeginBooking(ctx context.Context, sessionID string, creds *models.Credentials) (*SessionSnapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.BeginBooking(ctx, creds); err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

// AttestNotification records whether the requester has sent the payment.
func (s *DefaultBookingSessionService) AttestNotification(ctx context.Context, sessionID string, creds *models.Credentials, sent bool) (*SessionSnapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.AttestNotification(ctx, creds, sent); err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

func (s *DefaultBookingSessionService) CancelBooking(sessionID string) (*SessionSnapshot, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.CancelBooking(); err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

// CloseSession drops the session. A running flow is cancelled first; a
// session with a commit in flight cannot be closed.
func (s *DefaultBookingSessionService) CloseSession(sessionID string) error {
	session, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	if err := session.CancelBooking(); errors.Is(err, ErrCommitInFlight) {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	s.Logger.Info("booking session closed", zap.String("sessionID", sessionID))
	return nil
}

// SweepIdle removes sessions idle for longer than IdleTimeout and returns
// how many were dropped.
func (s *DefaultBookingSessionService) SweepIdle(now time.Time) int {
	if s.IdleTimeout <= 0 {
		return 0
	}

	s.mu.RLock()
	candidates := make(map[string]*Session, len(s.sessions))
	for id, session := range s.sessions {
		candidates[id] = session
	}
	s.mu.RUnlock()

	// Expired takes the session and flow locks; the registry lock is not held.
	var expired []string
	for id, session := range candidates {
		if session.Expired(now, s.IdleTimeout) {
			expired = append(expired, id)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for _, id := range expired {
		if s.sessions[id] == candidates[id] {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs SweepIdle every interval until ctx is done.
func (s *DefaultBookingSessionService) StartSweeper(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := s.SweepIdle(now); n > 0 {
					s.Logger.Info("expired idle booking sessions", zap.Int("count", n))
				}
			}
		}
	}()
}
