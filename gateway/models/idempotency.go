package models

import (
	"time"

	"github.com/google/uuid"
)

type IdempotencyState string

const (
	IdempotencyInProgress IdempotencyState = "InProgress"
	IdempotencyCompleted  IdempotencyState = "Completed"
)

// IdempotencyRecord tracks one idempotency key for one merchant. Records are
// immutable values; state transitions replace the whole record in the store.
type IdempotencyRecord struct {
	MerchantID  string
	Key         string
	Fingerprint string
	State       IdempotencyState
	PaymentID   *uuid.UUID
	CreatedAt   time.Time
}

// StartOutcome classifies an idempotency Start call. The cross product of
// record state and fingerprint match fully determines the outcome.
type StartOutcome string

const (
	// StartOutcomeStarted means no prior record existed; a fresh InProgress
	// record was inserted and the caller owns the downstream call.
	StartOutcomeStarted StartOutcome = "started"

	// StartOutcomeReplayCompleted means a completed record with the same
	// fingerprint exists; the caller must replay the stored payment.
	StartOutcomeReplayCompleted StartOutcome = "replay_completed"

	// StartOutcomeInProgress means a concurrent request with the same key and
	// fingerprint is still being processed.
	StartOutcomeInProgress StartOutcome = "in_progress"

	// StartOutcomeConflictMismatch means the key was reused with different
	// charge parameters, regardless of record state.
	StartOutcomeConflictMismatch StartOutcome = "conflict_mismatch"
)
