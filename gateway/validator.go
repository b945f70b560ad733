package gateway

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/eo-misc/payment-gateway/gateway/models"
	"github.com/eo-misc/payment-gateway/internal/expiry"
)

var acceptedCurrencies = []string{"GBP", "USD", "EUR"}

// Validator checks the syntax of a payment submission before any idempotency
// or bank work happens. It returns a map of field name to error messages; an
// empty map means the request is valid.
type Validator struct {
	now func() time.Time
}

func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// NewValidatorAt builds a Validator with a fixed clock for the
// expiry-in-the-past check.
func NewValidatorAt(now func() time.Time) *Validator {
	return &Validator{now: now}
}

func (v *Validator) Validate(req models.PostPaymentRequest) map[string][]string {
	errs := map[string][]string{}

	if len(req.CardNumber) < 14 || len(req.CardNumber) > 19 || !isDigits(req.CardNumber) {
		errs["CardNumber"] = []string{"Card number must be 14-19 numeric characters"}
	}

	month, err := strconv.Atoi(req.ExpiryMonth)
	if strings.TrimSpace(req.ExpiryMonth) == "" {
		errs["ExpiryMonth"] = []string{"Expiry month is required"}
	} else if err != nil || month < 1 || month > 12 {
		errs["ExpiryMonth"] = []string{"Expiry month must be between 1 and 12"}
	}

	year, err := strconv.Atoi(req.ExpiryYear)
	if strings.TrimSpace(req.ExpiryYear) == "" {
		errs["ExpiryYear"] = []string{"Expiry year is required"}
	} else if len(req.ExpiryYear) != 4 || err != nil || year < 2000 || year > 2099 {
		errs["ExpiryYear"] = []string{"Expiry year must be 4 digits between 2000 and 2099"}
	}

	validateCurrency(req.Currency, errs)

	if req.Amount <= 0 {
		errs["Amount"] = []string{"Amount must be greater than 0"}
	}

	if strings.TrimSpace(req.Cvv) == "" {
		errs["Cvv"] = []string{"CVV is required"}
	} else if (len(req.Cvv) != 3 && len(req.Cvv) != 4) || !isDigits(req.Cvv) {
		errs["Cvv"] = []string{"CVV must be 3 or 4 digits"}
	}

	// Cross-field check only when month and year individually passed.
	if _, bad := errs["ExpiryMonth"]; !bad {
		if _, bad := errs["ExpiryYear"]; !bad {
			if expiry.Expired(month, year, v.now()) {
				errs["ExpiryDate"] = []string{"Card has expired"}
			}
		}
	}

	return errs
}

func validateCurrency(currency string, errs map[string][]string) {
	if strings.TrimSpace(currency) == "" {
		errs["Currency"] = []string{"Currency is required"}
		return
	}
	if len(currency) != 3 || !isUpperLetters(currency) {
		errs["Currency"] = []string{"Currency must be a 3-letter uppercase ISO code"}
		return
	}
	for _, accepted := range acceptedCurrencies {
		if currency == accepted {
			return
		}
	}
	errs["Currency"] = []string{fmt.Sprintf("Currency must be one of: %s", strings.Join(acceptedCurrencies, ", "))}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isUpperLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
