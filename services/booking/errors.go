package booking

import "errors"

var (
	ErrRangeUnavailable  = errors.New("range contains unavailable slot")
	ErrBoardNotReady     = errors.New("board not ready")
	ErrInvalidSlotIndex  = errors.New("slot index out of range")
	ErrAuthRequired      = errors.New("login as a guest account to book this kitchen")
	ErrInvalidTransition = errors.New("action not allowed in the current booking step")
	ErrFlowBusy          = errors.New("a booking step is already in progress")
	ErrFlowActive        = errors.New("a booking is in progress; cancel it before changing the selection")
	ErrFlowCancelled     = errors.New("booking was cancelled")
	ErrCommitInFlight    = errors.New("reservation is being committed and can no longer be cancelled")
	ErrNoSelection       = errors.New("no slots selected")
	ErrSessionNotFound   = errors.New("booking session not found or expired")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidGuests     = errors.New("invalid guest count")
	ErrInvalidKitchen    = errors.New("kitchen cannot be booked")

	// ErrIdentityLookup and ErrCommitFailed wrap collaborator failures of the
	// confirmation flow. The collaborator error stays reachable through errors.Is.
	ErrIdentityLookup = errors.New("could not load your account details")
	ErrCommitFailed   = errors.New("reservation failed")
)
