package checkout

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrSessionNotFound  = errors.New("checkout session not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotSubmittable   = errors.New("payment method not submittable")
	// ErrSettlementFailed is unused by the simulated gateway but kept
	// so a real acquirer's declines map onto an existing branch.
	ErrSettlementFailed  = errors.New("settlement failed")
	ErrPersistenceFailed = errors.New("failed to persist booking")
	ErrCommitInFlight    = errors.New("commit already in progress")
)
