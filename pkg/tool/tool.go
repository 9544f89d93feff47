// Package tool defines the capability-provider interface and the broker that
// maps tool names to providers, applying per-tenant quotas and per-tool
// circuit breakers.
package tool

import (
	"context"
	"errors"

	"github.com/intakehq/intake/pkg/retry"
)

// Well-known tool names. The registry is populated at init, not hard-coded;
// these constants only name the built-in providers.
const (
	NameLLM        = "llm"
	NameGeocoder   = "geocoder"
	NameClassifier = "classifier"
)

// Request is the uniform tool invocation payload.
type Request struct {
	TenantID string
	JobID    string
	AgentID  string
	// Input is the primary text payload (prompt for llm, free text for
	// geocoder/classifier).
	Input string
	// Params carries request-level provider parameters (model id,
	// temperature, max tokens, stop sequences, ...).
	Params map[string]any
}

// Response is the uniform tool result.
type Response struct {
	// Text is the primary text output (LLM completion).
	Text string
	// Data carries structured provider output (geocoder coordinates,
	// classifier labels/scores).
	Data map[string]any
}

// Tool is a concrete capability provider behind a uniform call interface.
// ctx carries cancellation; implementations must honour it.
type Tool interface {
	Invoke(ctx context.Context, req *Request) (*Response, error)
}

// Error kinds recognised across the broker and retry policy.
var (
	// ErrToolBusy — quota exceeded or provider throttling; retriable.
	ErrToolBusy = errors.New("tool busy")

	// ErrToolUnavailable — provider down or breaker open; fatal for the call.
	ErrToolUnavailable = errors.New("tool unavailable")

	// ErrUnknownTool — no provider registered under the requested name.
	ErrUnknownTool = errors.New("unknown tool")
)

// transientError marks provider failures that should be retried (transient
// 5xx, connection resets) without being ErrToolBusy.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// MarkTransient wraps err so Classify treats it as retriable.
func MarkTransient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether err was marked transient.
func IsTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// Classify maps tool-call errors onto the retry policy's classes:
// ToolBusy, deadline expiry, and marked-transient errors are retriable;
// everything else is fatal for the call.
func Classify(err error) retry.Class {
	switch {
	case err == nil:
		return retry.Success
	case errors.Is(err, ErrToolBusy):
		return retry.Retriable
	case errors.Is(err, context.DeadlineExceeded):
		return retry.Retriable
	case IsTransient(err):
		return retry.Retriable
	default:
		return retry.Fatal
	}
}
