package gateway

import (
	"sync"

	"github.com/eo-misc/payment-gateway/gateway/models"
	"github.com/google/uuid"
)

type paymentKey struct {
	merchantID string
	paymentID  uuid.UUID
}

// Repository is the in-memory payment ledger, keyed by (merchant id, payment
// id). Writes are visible to all readers immediately.
type Repository struct {
	payments sync.Map // paymentKey -> *models.Payment
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Upsert(payment *models.Payment) {
	r.payments.Store(paymentKey{payment.MerchantID, payment.ID}, payment)
}

// Get returns the payment only when its stored merchant id matches. A payment
// held by a different merchant is indistinguishable from an absent one.
func (r *Repository) Get(merchantID string, paymentID uuid.UUID) (*models.Payment, bool) {
	v, ok := r.payments.Load(paymentKey{merchantID, paymentID})
	if !ok {
		return nil, false
	}
	return v.(*models.Payment), true
}
