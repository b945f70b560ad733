package gateway_test

import (
	"testing"
	"time"

	"github.com/eo-misc/payment-gateway/gateway"
	"github.com/eo-misc/payment-gateway/gateway/models"
	"github.com/stretchr/testify/require"
)

func validPaymentRequest() models.PostPaymentRequest {
	return models.PostPaymentRequest{
		CardNumber:  "4242424242424241",
		ExpiryMonth: "12",
		ExpiryYear:  "2099",
		Currency:    "GBP",
		Amount:      1050,
		Cvv:         "123",
	}
}

func TestValidator_ValidRequest(t *testing.T) {
	errs := gateway.NewValidator().Validate(validPaymentRequest())
	require.Empty(t, errs)
}

func TestValidator_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.PostPaymentRequest)
		field   string
		message string
	}{
		{
			name:    "card number too short",
			mutate:  func(r *models.PostPaymentRequest) { r.CardNumber = "4242424241" },
			field:   "CardNumber",
			message: "Card number must be 14-19 numeric characters",
		},
		{
			name:    "card number too long",
			mutate:  func(r *models.PostPaymentRequest) { r.CardNumber = "42424242424242424242" },
			field:   "CardNumber",
			message: "Card number must be 14-19 numeric characters",
		},
		{
			name:    "card number with letters",
			mutate:  func(r *models.PostPaymentRequest) { r.CardNumber = "4242424242424abc" },
			field:   "CardNumber",
			message: "Card number must be 14-19 numeric characters",
		},
		{
			name:    "missing card number",
			mutate:  func(r *models.PostPaymentRequest) { r.CardNumber = "" },
			field:   "CardNumber",
			message: "Card number must be 14-19 numeric characters",
		},
		{
			name:    "missing expiry month",
			mutate:  func(r *models.PostPaymentRequest) { r.ExpiryMonth = "" },
			field:   "ExpiryMonth",
			message: "Expiry month is required",
		},
		{
			name:    "expiry month out of range",
			mutate:  func(r *models.PostPaymentRequest) { r.ExpiryMonth = "13" },
			field:   "ExpiryMonth",
			message: "Expiry month must be between 1 and 12",
		},
		{
			name:    "expiry month not a number",
			mutate:  func(r *models.PostPaymentRequest) { r.ExpiryMonth = "ab" },
			field:   "ExpiryMonth",
			message: "Expiry month must be between 1 and 12",
		},
		{
			name:    "missing expiry year",
			mutate:  func(r *models.PostPaymentRequest) { r.ExpiryYear = "" },
			field:   "ExpiryYear",
			message: "Expiry year is required",
		},
		{
			name:    "two digit expiry year",
			mutate:  func(r *models.PostPaymentRequest) { r.ExpiryYear = "28" },
			field:   "ExpiryYear",
			message: "Expiry year must be 4 digits between 2000 and 2099",
		},
		{
			name:    "expiry year out of range",
			mutate:  func(r *models.PostPaymentRequest) { r.ExpiryYear = "2100" },
			field:   "ExpiryYear",
			message: "Expiry year must be 4 digits between 2000 and 2099",
		},
		{
			name:    "missing currency",
			mutate:  func(r *models.PostPaymentRequest) { r.Currency = "" },
			field:   "Currency",
			message: "Currency is required",
		},
		{
			name:    "lowercase currency",
			mutate:  func(r *models.PostPaymentRequest) { r.Currency = "gbp" },
			field:   "Currency",
			message: "Currency must be a 3-letter uppercase ISO code",
		},
		{
			name:    "unsupported currency",
			mutate:  func(r *models.PostPaymentRequest) { r.Currency = "JPY" },
			field:   "Currency",
			message: "Currency must be one of: GBP, USD, EUR",
		},
		{
			name:    "zero amount",
			mutate:  func(r *models.PostPaymentRequest) { r.Amount = 0 },
			field:   "Amount",
			message: "Amount must be greater than 0",
		},
		{
			name:    "negative amount",
			mutate:  func(r *models.PostPaymentRequest) { r.Amount = -5 },
			field:   "Amount",
			message: "Amount must be greater than 0",
		},
		{
			name:    "missing cvv",
			mutate:  func(r *models.PostPaymentRequest) { r.Cvv = "" },
			field:   "Cvv",
			message: "CVV is required",
		},
		{
			name:    "cvv too long",
			mutate:  func(r *models.PostPaymentRequest) { r.Cvv = "12345" },
			field:   "Cvv",
			message: "CVV must be 3 or 4 digits",
		},
		{
			name:    "cvv with letters",
			mutate:  func(r *models.PostPaymentRequest) { r.Cvv = "12a" },
			field:   "Cvv",
			message: "CVV must be 3 or 4 digits",
		},
	}

	validator := gateway.NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPaymentRequest()
			tt.mutate(&req)

			errs := validator.Validate(req)
			require.Contains(t, errs, tt.field)
			require.Equal(t, []string{tt.message}, errs[tt.field])
		})
	}
}

func TestValidator_ExpiredCard(t *testing.T) {
	now := time.Date(2028, time.July, 1, 0, 0, 0, 0, time.UTC)
	validator := gateway.NewValidatorAt(func() time.Time { return now })

	req := validPaymentRequest()
	req.ExpiryMonth = "6"
	req.ExpiryYear = "2028"

	errs := validator.Validate(req)
	require.Equal(t, []string{"Card has expired"}, errs["ExpiryDate"])

	// Valid through the end of the expiry month.
	req.ExpiryMonth = "7"
	require.Empty(t, validator.Validate(req))
}

func TestValidator_NoExpiryDateErrorWhenComponentsInvalid(t *testing.T) {
	validator := gateway.NewValidator()

	req := validPaymentRequest()
	req.ExpiryMonth = "13"
	req.ExpiryYear = "2020"

	errs := validator.Validate(req)
	require.Contains(t, errs, "ExpiryMonth")
	require.NotContains(t, errs, "ExpiryDate")
}

func TestValidator_CollectsMultipleErrors(t *testing.T) {
	errs := gateway.NewValidator().Validate(models.PostPaymentRequest{})

	require.Contains(t, errs, "CardNumber")
	require.Contains(t, errs, "ExpiryMonth")
	require.Contains(t, errs, "ExpiryYear")
	require.Contains(t, errs, "Currency")
	require.Contains(t, errs, "Amount")
	require.Contains(t, errs, "Cvv")
}
