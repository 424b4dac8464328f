package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"kitchenrent/models"
	"kitchenrent/services/notification"

	"go.uber.org/zap"
)

// FlowState is a step of the booking confirmation flow.
type FlowState int

const (
	FlowIdle FlowState = iota
	FlowAwaitingUserInfo
	FlowNotificationSent
	FlowAwaitingUserConfirmation
	FlowCommitted
	FlowAborted
)

var flowStateNames = [...]string{
	FlowIdle:                     "idle",
	FlowAwaitingUserInfo:         "awaitingUserInfo",
	FlowNotificationSent:         "notificationSent",
	FlowAwaitingUserConfirmation: "awaitingUserConfirmation",
	FlowCommitted:                "committed",
	FlowAborted:                  "aborted",
}

func (s FlowState) String() string {
	if s < 0 || int(s) >= len(flowStateNames) {
		return fmt.Sprintf("FlowState(%d)", int(s))
	}
	return flowStateNames[s]
}

func (s FlowState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Terminal reports whether no further step can follow.
func (s FlowState) Terminal() bool {
	return s == FlowCommitted || s == FlowAborted
}

// Active reports whether a booking is underway and the selection is frozen.
func (s FlowState) Active() bool {
	return s != FlowIdle && !s.Terminal()
}

var flowTransitions = map[FlowState][]FlowState{
	FlowIdle:                     {FlowAwaitingUserInfo, FlowAborted},
	FlowAwaitingUserInfo:         {FlowNotificationSent, FlowIdle, FlowAborted},
	FlowNotificationSent:         {FlowAwaitingUserConfirmation, FlowAborted},
	FlowAwaitingUserConfirmation: {FlowNotificationSent, FlowCommitted, FlowIdle, FlowAborted},
}

func canTransition(from, to FlowState) bool {
	for _, next := range flowTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ReservationListPath is where clients go once a booking is committed.
const ReservationListPath = "/api/reservations"

// FlowDeps are the collaborators of a confirmation flow.
type FlowDeps struct {
	Accounts  AccountService
	Notifier  notification.Dispatcher
	Committer ReservationCommitter
	Logger    *zap.Logger
	Now       func() time.Time
}

// FlowSnapshot is the client view of a confirmation flow.
type FlowSnapshot struct {
	State       FlowState             `json:"state"`
	Intent      *models.BookingIntent `json:"intent,omitempty"`
	Message     string                `json:"message,omitempty"`
	ResendCount int                   `json:"resendCount"`
	Error       string                `json:"error,omitempty"`
	Reservation *models.Reservation   `json:"reservation,omitempty"`
	RedirectTo  string                `json:"redirectTo,omitempty"`
}

// ConfirmationFlow drives one booking intent from the identity check to the
// commit. The mutex is never held across a collaborator call; epoch changes
// on cancel so late responses of an abandoned step are discarded.
type ConfirmationFlow struct {
	deps FlowDeps

	mu          sync.Mutex
	state       FlowState
	epoch       uint64
	busy        bool
	committing  bool
	kitchen     *models.Kitchen
	intent      *models.BookingIntent
	creds       *models.Credentials
	notice      *models.PaymentNotice
	resendCount int
	lastErr     error
	reservation *models.Reservation
}

// NewConfirmationFlow returns a flow in the Idle state.
func NewConfirmationFlow(deps FlowDeps) *ConfirmationFlow {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &ConfirmationFlow{deps: deps}
}

// State returns the current step.
func (f *ConfirmationFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Committing reports whether a commit call is in flight.
func (f *ConfirmationFlow) Committing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.committing
}

// Begin checks the credentials, resolves the requester's name and dispatches
// the payment instructions. On return without error the flow awaits the
// requester's attestation.
func (f *ConfirmationFlow) Begin(ctx context.Context, creds *models.Credentials, kitchen *models.Kitchen, intent *models.BookingIntent) error {
	epoch, err := f.start(creds, kitchen, intent)
	if err != nil {
		return err
	}
	return f.run(ctx, epoch)
}

// start performs the synchronous part of Begin.
func (f *ConfirmationFlow) start(creds *models.Credentials, kitchen *models.Kitchen, intent *models.BookingIntent) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.busy {
		return 0, ErrFlowBusy
	}
	if f.state != FlowIdle {
		return 0, ErrInvalidTransition
	}
	if !creds.IsConsumer(f.deps.Now()) {
		f.lastErr = ErrAuthRequired
		return 0, ErrAuthRequired
	}
	if intent == nil || len(intent.AvailableIDs) == 0 {
		return 0, ErrNoSelection
	}

	c := *creds
	f.creds = &c
	f.kitchen = kitchen
	f.intent = intent
	f.notice = nil
	f.lastErr = nil
	f.resendCount = 0
	if err := f.setState(FlowAwaitingUserInfo); err != nil {
		return 0, err
	}
	f.busy = true
	f.epoch++
	return f.epoch, nil
}

// run resolves the requester's identity and sends the first notification.
func (f *ConfirmationFlow) run(ctx context.Context, epoch uint64) error {
	name, err := f.deps.Accounts.GetDisplayName(ctx, f.requesterID())

	f.mu.Lock()
	if f.epoch != epoch {
		f.mu.Unlock()
		f.deps.Logger.Info("discarding identity lookup of a cancelled booking")
		return ErrFlowCancelled
	}
	if err != nil {
		f.busy = false
		f.lastErr = fmt.Errorf("%w: %w", ErrIdentityLookup, err)
		f.intent = nil
		serr := f.setState(FlowIdle)
		f.mu.Unlock()
		if serr != nil {
			return serr
		}
		return f.lastErr
	}

	notice := BuildPaymentNotice(f.kitchen, f.intent, f.creds.UserID, name)
	f.notice = &notice
	if err := f.setState(FlowNotificationSent); err != nil {
		f.busy = false
		f.mu.Unlock()
		return err
	}
	f.mu.Unlock()

	return f.deliver(ctx, epoch, notice)
}

// deliver sends a notice claimed under mu (state NotificationSent, busy set)
// and then waits for the attestation. Delivery failures are logged only.
func (f *ConfirmationFlow) deliver(ctx context.Context, epoch uint64, notice models.PaymentNotice) error {
	if err := f.deps.Notifier.Dispatch(ctx, notice); err != nil {
		f.deps.Logger.Warn("payment notice dispatch failed",
			zap.String("intentID", notice.IntentID), zap.Error(err))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.epoch != epoch {
		return ErrFlowCancelled
	}
	f.busy = false
	return f.setState(FlowAwaitingUserConfirmation)
}

// Attest records the requester's answer to "have you sent the payment?".
// A yes commits the reservation; a no sends the same instructions again.
func (f *ConfirmationFlow) Attest(ctx context.Context, creds *models.Credentials, sent bool) error {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return ErrFlowBusy
	}
	if f.state != FlowAwaitingUserConfirmation {
		f.mu.Unlock()
		return ErrInvalidTransition
	}
	if !creds.Valid(f.deps.Now()) || creds.UserID != f.creds.UserID {
		f.mu.Unlock()
		return ErrAuthRequired
	}
	epoch := f.epoch

	if !sent {
		f.resendCount++
		f.deps.Logger.Info("resending payment notice",
			zap.String("intentID", f.intent.IntentID), zap.Int("resendCount", f.resendCount))
		if err := f.setState(FlowNotificationSent); err != nil {
			f.mu.Unlock()
			return err
		}
		f.busy = true
		notice := *f.notice
		f.mu.Unlock()
		return f.deliver(ctx, epoch, notice)
	}

	f.busy = true
	f.committing = true
	req := models.CommitRequest{
		IntentID:     f.intent.IntentID,
		KitchenID:    f.intent.KitchenID,
		UserID:       f.creds.UserID,
		Date:         f.intent.Date,
		StartHour:    f.intent.StartHour,
		EndHour:      f.intent.EndHour,
		AvailableIDs: append([]string(nil), f.intent.AvailableIDs...),
		GuestCount:   f.intent.GuestCount,
		TotalPrice:   f.intent.TotalPrice,
	}
	f.mu.Unlock()

	res, err := f.deps.Committer.CommitReservation(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false
	f.committing = false
	if err != nil {
		f.lastErr = fmt.Errorf("%w: %w", ErrCommitFailed, err)
		f.intent = nil
		f.notice = nil
		if serr := f.setState(FlowIdle); serr != nil {
			return serr
		}
		return f.lastErr
	}
	f.reservation = res
	return f.setState(FlowCommitted)
}

// Cancel aborts the flow. It is refused while a commit is in flight.
func (f *ConfirmationFlow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.committing {
		return ErrCommitInFlight
	}
	if f.state.Terminal() {
		return ErrInvalidTransition
	}
	if err := f.setState(FlowAborted); err != nil {
		return err
	}
	f.epoch++
	f.busy = false
	f.intent = nil
	f.notice = nil
	return nil
}

// Snapshot returns the client view of the flow.
func (f *ConfirmationFlow) Snapshot() FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := FlowSnapshot{
		State:       f.state,
		ResendCount: f.resendCount,
		Reservation: f.reservation,
	}
	if f.intent != nil {
		intent := *f.intent
		snap.Intent = &intent
	}
	if f.notice != nil {
		snap.Message = f.notice.Message
	}
	if f.lastErr != nil {
		snap.Error = f.lastErr.Error()
	}
	if f.state == FlowCommitted {
		snap.RedirectTo = ReservationListPath
	}
	return snap
}

func (f *ConfirmationFlow) requesterID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creds.UserID
}

// setState must be called with mu held. An illegal step leaves the state
// unchanged.
func (f *ConfirmationFlow) setState(next FlowState) error {
	if next != f.state && !canTransition(f.state, next) {
		f.deps.Logger.Error("illegal flow transition",
			zap.Stringer("from", f.state), zap.Stringer("to", next))
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, f.state, next)
	}
	f.state = next
	return nil
}
