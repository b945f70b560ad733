package models

import "github.com/google/uuid"

type PaymentStatus string

const (
	PaymentAuthorized PaymentStatus = "Authorized"
	PaymentDeclined   PaymentStatus = "Declined"
)

// Payment is a committed payment outcome. It is created once after the bank
// verdict is known and never mutated afterwards. Only the last four digits of
// the card number are kept.
type Payment struct {
	ID                 uuid.UUID
	MerchantID         string
	Status             PaymentStatus
	CardNumberLastFour string
	ExpiryMonth        string
	ExpiryYear         string
	Currency           string
	Amount             int
}

// PostPaymentRequest is a merchant's payment submission. The CVV is forwarded
// to the bank and discarded; it is never persisted.
type PostPaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int    `json:"amount"`
	Cvv         string `json:"cvv"`
}

// PaymentResponse is the caller-facing view of a payment, used both for
// submission results and lookups.
type PaymentResponse struct {
	ID                 string        `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour string        `json:"card_number_last_four"`
	ExpiryMonth        string        `json:"expiry_month"`
	ExpiryYear         string        `json:"expiry_year"`
	Currency           string        `json:"currency"`
	Amount             int           `json:"amount"`
}

func (p *Payment) Response() PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID.String(),
		Status:             p.Status,
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
	}
}
