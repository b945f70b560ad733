package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/eo-misc/payment-gateway/gateway/bank"
	"github.com/eo-misc/payment-gateway/gateway/models"
	"github.com/eo-misc/payment-gateway/internal/expiry"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// BankClient is the downstream authority collaborator. A verdict comes back
// as a PaymentResponse; failures come back as errors classified through the
// bank package sentinels.
type BankClient interface {
	ProcessPayment(ctx context.Context, req bank.PaymentRequest) (bank.PaymentResponse, error)
}

// Service orchestrates validation, the idempotency ledger, the bank call and
// the payment ledger into a single outcome. It holds no state of its own.
type Service struct {
	bank        BankClient
	repo        *Repository
	idempotency *IdempotencyStore
	validator   *Validator
	retryAfter  int
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(logger *slog.Logger, bankClient BankClient, repo *Repository, store *IdempotencyStore, validator *Validator, cfg *Config) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Service{
		bank:        bankClient,
		repo:        repo,
		idempotency: store,
		validator:   validator,
		retryAfter:  cfg.RetryAfterSeconds,
		logger:      logger,
		now:         time.Now,
	}
}

// ProcessPayment runs one payment submission end to end and returns exactly
// one ProcessResult variant. A non-nil error means an unclassified failure;
// the idempotency record has been rolled back and the caller should treat it
// as a defect, not a business outcome.
func (s *Service) ProcessPayment(ctx context.Context, req models.PostPaymentRequest, merchantID, idempotencyKey string) (models.ProcessResult, error) {
	logger := s.logger.With(
		slog.String("merchant_id", merchantID),
		slog.String("idempotency_key", idempotencyKey),
	)

	if validationErrors := s.validator.Validate(req); len(validationErrors) > 0 {
		logger.Warn("payment validation failed", slog.Int("error_count", len(validationErrors)))
		return models.RejectedResult{Errors: validationErrors}, nil
	}

	fingerprint := Fingerprint(req)
	outcome, record := s.idempotency.Start(merchantID, idempotencyKey, fingerprint, s.now())
	switch outcome {
	case models.StartOutcomeReplayCompleted:
		// Completed records always reference a stored payment.
		existing, ok := s.repo.Get(merchantID, *record.PaymentID)
		if !ok {
			return nil, fmt.Errorf("completed idempotency record references missing payment %s", record.PaymentID)
		}
		logger.Info("replaying completed payment", slog.String("payment_id", existing.ID.String()))
		if existing.Status == models.PaymentAuthorized {
			return models.AuthorizedResult{Payment: existing, Replay: true}, nil
		}
		return models.DeclinedResult{Payment: existing, Replay: true}, nil

	case models.StartOutcomeInProgress:
		return models.ConflictInProgressResult{
			Message:           "Another request with this idempotency key is being processed.",
			RetryAfterSeconds: s.retryAfter,
		}, nil

	case models.StartOutcomeConflictMismatch:
		return models.ConflictMismatchResult{
			Message: "Idempotency key was used with different parameters.",
		}, nil
	}

	// Started: this request owns the bank call. From here on exactly one of
	// Complete or Delete must run before returning.
	committed := false
	defer func() {
		if !committed {
			s.idempotency.Delete(merchantID, idempotencyKey)
		}
	}()

	payment := &models.Payment{
		ID:                 uuid.New(),
		MerchantID:         merchantID,
		CardNumberLastFour: req.CardNumber[len(req.CardNumber)-4:],
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.Currency,
		Amount:             req.Amount,
	}

	month, _ := strconv.Atoi(req.ExpiryMonth)
	year, _ := strconv.Atoi(req.ExpiryYear)

	bankResponse, err := s.bank.ProcessPayment(ctx, bank.PaymentRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: expiry.CardFace(month, year),
		Currency:   req.Currency,
		Amount:     req.Amount,
		Cvv:        req.Cvv,
	})
	if err != nil {
		if errors.Is(err, bank.ErrUnavailable) {
			logger.Warn("bank unavailable", slog.Any("err", err))
			return models.BankUnavailableResult{Message: "Bank service unavailable"}, nil
		}
		if errors.Is(err, bank.ErrMalformedRequest) {
			// Folded into the unavailable outcome so internal request-building
			// defects are not leaked to the caller.
			logger.Error("bank rejected request as malformed", slog.Any("err", err))
			return models.BankUnavailableResult{Message: "Bank service unavailable"}, nil
		}
		return nil, fmt.Errorf("processing bank payment: %w", err)
	}

	if bankResponse.Authorized {
		payment.Status = models.PaymentAuthorized
	} else {
		payment.Status = models.PaymentDeclined
	}

	s.repo.Upsert(payment)
	s.idempotency.Complete(merchantID, idempotencyKey, payment.ID)
	committed = true

	logger.Info("payment processed",
		slog.String("payment_id", payment.ID.String()),
		slog.String("status", string(payment.Status)),
	)

	if payment.Status == models.PaymentAuthorized {
		return models.AuthorizedResult{Payment: payment}, nil
	}
	return models.DeclinedResult{Payment: payment}, nil
}

// RetrievePayment looks up a committed payment. Lookups are merchant-scoped:
// an id held by another merchant reads as absent.
func (s *Service) RetrievePayment(merchantID string, paymentID uuid.UUID) (*models.Payment, bool) {
	return s.repo.Get(merchantID, paymentID)
}
