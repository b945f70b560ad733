package models

// ProcessResult is the outcome of a payment submission. It is a closed set:
// the transport layer must match every variant explicitly and not let any
// fall through to a default.
type ProcessResult interface {
	processResult()
}

// AuthorizedResult carries an authorized payment. Replay is true when the
// payment was served from a previously committed result.
type AuthorizedResult struct {
	Payment *Payment
	Replay  bool
}

// DeclinedResult carries a declined payment, with the same replay semantics
// as AuthorizedResult.
type DeclinedResult struct {
	Payment *Payment
	Replay  bool
}

// RejectedResult carries field-level validation errors. No idempotency record
// is touched for a rejected request.
type RejectedResult struct {
	Errors map[string][]string
}

// ConflictInProgressResult signals a concurrent duplicate; the caller should
// retry after the suggested delay.
type ConflictInProgressResult struct {
	Message           string
	RetryAfterSeconds int
}

// ConflictMismatchResult signals an idempotency key reused with different
// parameters. This is a permanent client error.
type ConflictMismatchResult struct {
	Message string
}

// BankUnavailableResult signals that no verdict was received from the bank.
// The idempotency record has been rolled back, so the same key may be retried.
type BankUnavailableResult struct {
	Message string
}

func (AuthorizedResult) processResult()         {}
func (DeclinedResult) processResult()           {}
func (RejectedResult) processResult()           {}
func (ConflictInProgressResult) processResult() {}
func (ConflictMismatchResult) processResult()   {}
func (BankUnavailableResult) processResult()    {}
