// Package acquiringbank is a stand-in for the settlement authority. It
// authorizes or declines charges from the last digit of the card number,
// which makes outcomes predictable for demos and tests: odd digits authorize,
// even digits decline, a trailing zero simulates an outage.
package acquiringbank

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type PaymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int    `json:"amount"`
	Cvv        string `json:"cvv"`
}

type PaymentResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// API is the HTTP API for the bank simulator.
type API struct {
	logger *slog.Logger
}

func NewAPI(logger *slog.Logger) *API {
	return &API{
		logger: logger,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/payments", a.processPayment)
}

func (a *API) processPayment(w http.ResponseWriter, r *http.Request) {
	req := PaymentRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.CardNumber == "" {
		http.Error(w, "card_number is required", http.StatusBadRequest)
		return
	}

	// A CVV of 999 simulates a malformed request from the gateway's side.
	if req.Cvv == "999" {
		http.Error(w, "malformed payment request", http.StatusBadRequest)
		return
	}

	lastDigit := req.CardNumber[len(req.CardNumber)-1]
	if lastDigit == '0' {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	authorized := (lastDigit-'0')%2 == 1
	a.logger.Info("charge processed",
		slog.Bool("authorized", authorized),
		slog.Int("amount", req.Amount),
		slog.String("currency", req.Currency),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(PaymentResponse{
		Authorized:        authorized,
		AuthorizationCode: uuid.New().String(),
	})
}
