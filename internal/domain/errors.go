package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the assistant pipeline.
var (
	// ErrInvalidRequest indicates the caller's input failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoResults indicates that every dispatched search failed or that no
	// flight survived filtering, the total-failure outcome. Record- and
	// batch-level failures are recovered locally and never surface on their
	// own; only this aggregate outcome reaches the caller.
	ErrNoResults = errors.New("no flights matched the search")
)

// SearchError wraps a failure from the flight-search provider for one date
// combination. The batch it belongs to contributes zero flights; the run
// continues with the remaining combinations.
type SearchError struct {
	// Combination is the date pair whose search failed.
	Combination DateCombination

	// StatusCode is the provider's HTTP status when one was received.
	StatusCode int

	// Retryable marks transient failures (rate limits, 5xx, network).
	Retryable bool

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	date := e.Combination.Departure.Format("2006-01-02")
	if e.StatusCode > 0 {
		return fmt.Sprintf("search for %s failed with status %d: %v", date, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("search for %s failed: %v", date, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SearchError) Unwrap() error {
	return e.Err
}

// NewSearchError creates a non-retryable SearchError.
func NewSearchError(combo DateCombination, statusCode int, err error) *SearchError {
	return &SearchError{Combination: combo, StatusCode: statusCode, Err: err}
}

// NewRetryableSearchError creates a SearchError marked transient.
func NewRetryableSearchError(combo DateCombination, statusCode int, err error) *SearchError {
	return &SearchError{Combination: combo, StatusCode: statusCode, Retryable: true, Err: err}
}

// InterpreterError wraps a failure from the natural-language interpreter.
// Callers degrade to DefaultPreferences instead of failing the search.
type InterpreterError struct {
	Err error
}

// Error implements the error interface.
func (e *InterpreterError) Error() string {
	return fmt.Sprintf("preference interpretation failed: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *InterpreterError) Unwrap() error {
	return e.Err
}

// NewInterpreterError wraps an interpreter failure.
func NewInterpreterError(err error) *InterpreterError {
	return &InterpreterError{Err: err}
}
