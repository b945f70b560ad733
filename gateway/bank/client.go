// Package bank holds the HTTP client for the downstream acquiring bank. The
// client owns transport concerns (timeout, status classification); the
// gateway core only branches on whether a verdict was received.
package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrUnavailable means no verdict was received: the bank returned 503,
	// the request timed out, or the connection failed.
	ErrUnavailable = errors.New("bank unavailable")

	// ErrMalformedRequest means the bank rejected the request as malformed.
	// This points at a defect in our request construction, not a card issue.
	ErrMalformedRequest = errors.New("bank rejected request as malformed")
)

// PaymentRequest is the charge request sent to the bank. ExpiryDate is
// formatted MM/YYYY. This is the only place the full card number and CVV
// leave the process.
type PaymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int    `json:"amount"`
	Cvv        string `json:"cvv"`
}

// PaymentResponse is the bank's verdict for a charge attempt.
type PaymentResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// HTTPClient talks to the bank over JSON HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// ProcessPayment posts the charge request and returns the verdict. Failures
// are classified through ErrUnavailable and ErrMalformedRequest; anything
// else (including caller cancellation) surfaces as an unclassified error.
func (c *HTTPClient) ProcessPayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return PaymentResponse{}, fmt.Errorf("encoding bank request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return PaymentResponse{}, fmt.Errorf("building bank request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return PaymentResponse{}, fmt.Errorf("bank request canceled: %w", err)
		}
		// Timeouts and transport failures mean no verdict was received.
		return PaymentResponse{}, fmt.Errorf("bank request failed: %v: %w", err, ErrUnavailable)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusServiceUnavailable:
		return PaymentResponse{}, fmt.Errorf("bank returned 503: %w", ErrUnavailable)
	case http.StatusBadRequest:
		return PaymentResponse{}, fmt.Errorf("bank returned 400: %w", ErrMalformedRequest)
	}
	if resp.StatusCode != http.StatusOK {
		return PaymentResponse{}, fmt.Errorf("unexpected status %d from bank", resp.StatusCode)
	}

	var payload PaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return PaymentResponse{}, fmt.Errorf("decoding bank response: %w", err)
	}

	return payload, nil
}
