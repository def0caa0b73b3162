package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel failures shared across pipeline stages.
var (
	// ErrUpstreamUnavailable means the generative capability could not be
	// reached (or timed out). Generation and extraction fall back; grading
	// converts it to ErrGradingUnavailable.
	ErrUpstreamUnavailable = errors.New("upstream capability unavailable")

	// ErrGradingUnavailable is surfaced to the caller instead of a score.
	// Grading never degrades to a local stand-in.
	ErrGradingUnavailable = errors.New("grading unavailable")
)

// InvalidRequestError rejects malformed caller input at the boundary,
// before any external call is made.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	if e.Field == "" {
		return "invalid request: " + e.Reason
	}
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

func InvalidRequest(field, reason string) error {
	return &InvalidRequestError{Field: field, Reason: reason}
}

func IsInvalidRequest(err error) bool {
	var ir *InvalidRequestError
	return errors.As(err, &ir)
}

// SchemaViolationError means the capability responded but its output failed
// validation. For fallback purposes it is treated like an unreachable
// upstream.
type SchemaViolationError struct {
	Detail string
}

func (e *SchemaViolationError) Error() string {
	return "schema violation: " + e.Detail
}

func SchemaViolation(detail string) error {
	return &SchemaViolationError{Detail: detail}
}

// ShouldFallback reports whether a capability failure permits substituting
// the deterministic local generator.
func ShouldFallback(err error) bool {
	if errors.Is(err, ErrUpstreamUnavailable) {
		return true
	}
	var sv *SchemaViolationError
	return errors.As(err, &sv)
}
