package gateway

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/eo-misc/payment-gateway/gateway/models"
)

// Fingerprint derives a stable digest of a request's charge-relevant fields.
// Currency is upper-cased and expiry fields parsed to integers so that
// formatting differences between retries do not change the digest. Only the
// last four card digits are used; the full number and CVV never enter the
// hash, which keeps the fingerprint reproducible without storing card data.
//
// Must be called after validation; fields are assumed well-formed.
func Fingerprint(req models.PostPaymentRequest) string {
	last4 := req.CardNumber[len(req.CardNumber)-4:]
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	month, _ := strconv.Atoi(req.ExpiryMonth)
	year, _ := strconv.Atoi(req.ExpiryYear)

	canonical := fmt.Sprintf("%d|%s|%s|%d|%d", req.Amount, currency, last4, month, year)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}
