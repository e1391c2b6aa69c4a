package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ProviderFailure wraps an error from one provider call with its failure
// classification. Adapters construct it; the orchestrator reads the kind
// for the attempt log and otherwise treats every failure identically.
type ProviderFailure struct {
	Kind Outcome
	Err  error
}

// Error implements the error interface.
func (e *ProviderFailure) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap supports errors.Is/errors.As chains.
func (e *ProviderFailure) Unwrap() error {
	return e.Err
}

// NewProviderFailure wraps err with the given failure classification.
func NewProviderFailure(kind Outcome, err error) *ProviderFailure {
	return &ProviderFailure{Kind: kind, Err: err}
}

// ClassifyHTTPStatus maps a non-2xx vendor response status to a failure
// classification. 4xx statuses outside the auth/quota set count as
// malformed: the request we built violated the vendor contract.
func ClassifyHTTPStatus(status int) Outcome {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return OutcomeAuth
	case status == http.StatusTooManyRequests:
		return OutcomeQuota
	case status >= http.StatusInternalServerError:
		return OutcomeNetwork
	default:
		return OutcomeMalformed
	}
}

// FailureKind extracts the failure classification from a provider error.
// Timeouts and cancellations count as network failures; so does any error
// that carries no explicit classification.
func FailureKind(err error) Outcome {
	var pf *ProviderFailure
	if errors.As(err, &pf) {
		return pf.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return OutcomeNetwork
	}
	return OutcomeNetwork
}
