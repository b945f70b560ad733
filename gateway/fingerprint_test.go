package gateway_test

import (
	"testing"

	"github.com/eo-misc/payment-gateway/gateway"
	"github.com/eo-misc/payment-gateway/gateway/models"
	"github.com/stretchr/testify/require"
)

func fingerprintRequest() models.PostPaymentRequest {
	return models.PostPaymentRequest{
		CardNumber:  "4242424242424241",
		ExpiryMonth: "12",
		ExpiryYear:  "2028",
		Currency:    "GBP",
		Amount:      1050,
		Cvv:         "123",
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	req := fingerprintRequest()

	first := gateway.Fingerprint(req)
	second := gateway.Fingerprint(req)

	require.Equal(t, first, second)
	require.Len(t, first, 64)
}

func TestFingerprint_IgnoresCvv(t *testing.T) {
	a := fingerprintRequest()
	b := fingerprintRequest()
	b.Cvv = "987"

	require.Equal(t, gateway.Fingerprint(a), gateway.Fingerprint(b))
}

func TestFingerprint_IgnoresLeadingCardDigits(t *testing.T) {
	a := fingerprintRequest()
	b := fingerprintRequest()
	b.CardNumber = "5555555555554241" // same last four digits

	require.Equal(t, gateway.Fingerprint(a), gateway.Fingerprint(b))
}

func TestFingerprint_NormalizesCurrencyAndExpiry(t *testing.T) {
	a := fingerprintRequest()
	a.ExpiryMonth = "06"

	b := fingerprintRequest()
	b.Currency = "gbp"
	b.ExpiryMonth = "6"

	require.Equal(t, gateway.Fingerprint(a), gateway.Fingerprint(b))
}

func TestFingerprint_ChangesWithChargeFields(t *testing.T) {
	base := gateway.Fingerprint(fingerprintRequest())

	amount := fingerprintRequest()
	amount.Amount = 2000
	require.NotEqual(t, base, gateway.Fingerprint(amount))

	currency := fingerprintRequest()
	currency.Currency = "USD"
	require.NotEqual(t, base, gateway.Fingerprint(currency))

	lastFour := fingerprintRequest()
	lastFour.CardNumber = "4242424242424243"
	require.NotEqual(t, base, gateway.Fingerprint(lastFour))

	year := fingerprintRequest()
	year.ExpiryYear = "2029"
	require.NotEqual(t, base, gateway.Fingerprint(year))
}
