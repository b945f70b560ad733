package gateway

import (
	"sync"
	"time"

	"github.com/eo-misc/payment-gateway/gateway/models"
	"github.com/google/uuid"
)

type idempotencyKey struct {
	merchantID string
	key        string
}

// IdempotencyStore is the concurrent idempotency ledger. Records are keyed by
// (merchant id, idempotency key), so two merchants may reuse the same literal
// key independently. Stored records are immutable; Complete replaces the
// whole value rather than mutating it in place.
//
// There is no reclamation of stale InProgress records: a process crash
// between Start and Complete/Delete leaves the key blocked.
type IdempotencyStore struct {
	records sync.Map // idempotencyKey -> *models.IdempotencyRecord
}

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{}
}

// Start registers the key as in progress if it is free. The insert is a
// single atomic insert-if-absent, so under concurrent calls with the same
// (merchant id, key) exactly one caller observes StartOutcomeStarted. Every
// other caller is classified from the existing record's state and
// fingerprint, never from the new request.
func (s *IdempotencyStore) Start(merchantID, key, fingerprint string, now time.Time) (models.StartOutcome, *models.IdempotencyRecord) {
	candidate := &models.IdempotencyRecord{
		MerchantID:  merchantID,
		Key:         key,
		Fingerprint: fingerprint,
		State:       models.IdempotencyInProgress,
		CreatedAt:   now,
	}

	actual, loaded := s.records.LoadOrStore(idempotencyKey{merchantID, key}, candidate)
	record := actual.(*models.IdempotencyRecord)
	if !loaded {
		return models.StartOutcomeStarted, record
	}

	sameFingerprint := record.Fingerprint == fingerprint
	switch {
	case record.State == models.IdempotencyCompleted && sameFingerprint:
		return models.StartOutcomeReplayCompleted, record
	case record.State == models.IdempotencyInProgress && sameFingerprint:
		return models.StartOutcomeInProgress, record
	default:
		return models.StartOutcomeConflictMismatch, record
	}
}

// Complete transitions an existing record to Completed, attaching the payment
// id. Completing an absent key is a silent no-op; that only happens if the
// caller raced a Delete, which correct usage rules out.
func (s *IdempotencyStore) Complete(merchantID, key string, paymentID uuid.UUID) {
	k := idempotencyKey{merchantID, key}
	for {
		v, ok := s.records.Load(k)
		if !ok {
			return
		}
		current := v.(*models.IdempotencyRecord)
		completed := *current
		completed.State = models.IdempotencyCompleted
		completed.PaymentID = &paymentID
		if s.records.CompareAndSwap(k, v, &completed) {
			return
		}
	}
}

// Delete removes the record for the key so a future retry starts fresh.
// Deleting an absent key is a no-op.
func (s *IdempotencyStore) Delete(merchantID, key string) {
	s.records.Delete(idempotencyKey{merchantID, key})
}
