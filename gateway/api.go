package gateway

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/eo-misc/payment-gateway/gateway/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// token is the accepted shape for Merchant-Id and Idempotency-Key headers.
var token = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// API is the HTTP API for the gateway service.
type API struct {
	service *Service
}

func NewAPI(service *Service) *API {
	return &API{
		service: service,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/", a.postPayment)
		r.Get("/{paymentID}", a.getPayment)
	})
}

func (a *API) postPayment(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := normalizeToken(r.Header.Get("Merchant-Id"))
	if !ok {
		http.Error(w, "Invalid or missing Merchant-Id header", http.StatusBadRequest)
		return
	}

	idempotencyKey, ok := normalizeToken(r.Header.Get("Idempotency-Key"))
	if !ok {
		http.Error(w, "Invalid Idempotency-Key header", http.StatusBadRequest)
		return
	}

	req := models.PostPaymentRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.service.ProcessPayment(r.Context(), req, merchantID, idempotencyKey)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "An error occurred"})
		return
	}

	switch res := result.(type) {
	case models.AuthorizedResult:
		a.writePayment(w, res.Payment, idempotencyKey, res.Replay)
	case models.DeclinedResult:
		a.writePayment(w, res.Payment, idempotencyKey, res.Replay)
	case models.RejectedResult:
		writeJSON(w, http.StatusBadRequest, map[string]map[string][]string{"errors": res.Errors})
	case models.ConflictInProgressResult:
		w.Header().Set("Retry-After", strconv.Itoa(res.RetryAfterSeconds))
		writeJSON(w, http.StatusConflict, map[string]string{"error": res.Message})
	case models.ConflictMismatchResult:
		writeJSON(w, http.StatusConflict, map[string]string{"error": res.Message})
	case models.BankUnavailableResult:
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": res.Message})
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (a *API) getPayment(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := normalizeToken(r.Header.Get("Merchant-Id"))
	if !ok {
		http.Error(w, "Invalid or missing Merchant-Id header", http.StatusBadRequest)
		return
	}

	paymentID, err := uuid.Parse(chi.URLParam(r, "paymentID"))
	if err != nil {
		http.Error(w, "Payment not found", http.StatusNotFound)
		return
	}

	payment, found := a.service.RetrievePayment(merchantID, paymentID)
	if !found {
		http.Error(w, "Payment not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, payment.Response())
}

func (a *API) writePayment(w http.ResponseWriter, payment *models.Payment, idempotencyKey string, replay bool) {
	w.Header().Set("Idempotency-Key", idempotencyKey)
	if replay {
		w.Header().Set("Idempotent-Replay", "true")
	}
	writeJSON(w, http.StatusOK, payment.Response())
}

// normalizeToken trims the header value and accepts it only when it matches
// the token shape. Empty or malformed values are rejected at the boundary so
// ledger keys stay well-formed.
func normalizeToken(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if !token.MatchString(value) {
		return "", false
	}
	return value, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
