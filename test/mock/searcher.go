// Package mock provides configurable test doubles for integration testing,
// where fixed canned behavior is not enough (delays, per-date responses,
// partial failures).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
)

// Searcher is a configurable mock implementation of domain.OfferSearcher.
// Responses can be set globally or per departure date; delays and errors
// support timeout and partial-failure scenarios.
type Searcher struct {
	offers  []domain.RawOffer
	byDate  map[string][]domain.RawOffer
	err     error
	errFor  map[string]error
	delay   time.Duration
	mu      sync.Mutex
	queries []domain.SearchQuery
}

// NewSearcher creates a new mock searcher.
// It is configured using the builder pattern methods.
func NewSearcher() *Searcher {
	return &Searcher{
		byDate: make(map[string][]domain.RawOffer),
		errFor: make(map[string]error),
	}
}

// WithOffers configures the searcher to return the given offers for every
// query without a date-specific override.
func (s *Searcher) WithOffers(offers []domain.RawOffer) *Searcher {
	s.offers = offers
	return s
}

// WithOffersFor configures the offers returned for one departure date
// (YYYY-MM-DD).
func (s *Searcher) WithOffersFor(date string, offers []domain.RawOffer) *Searcher {
	s.byDate[date] = offers
	return s
}

// WithError configures the searcher to fail every query with the given error.
func (s *Searcher) WithError(err error) *Searcher {
	s.err = err
	return s
}

// WithErrorFor configures a failure for one departure date (YYYY-MM-DD).
func (s *Searcher) WithErrorFor(date string, err error) *Searcher {
	s.errFor[date] = err
	return s
}

// WithDelay configures the searcher to wait before responding.
// This is useful for testing timeout behavior.
func (s *Searcher) WithDelay(d time.Duration) *Searcher {
	s.delay = d
	return s
}

// SearchOffers implements domain.OfferSearcher. It respects context
// cancellation and records every query it receives.
func (s *Searcher) SearchOffers(ctx context.Context, query domain.SearchQuery) ([]domain.RawOffer, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	date := query.DepartureDate.Format("2006-01-02")
	if err, ok := s.errFor[date]; ok {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}

	if offers, ok := s.byDate[date]; ok {
		return offers, nil
	}
	return s.offers, nil
}

// CallCount returns how many times SearchOffers was called.
func (s *Searcher) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

// Queries returns a copy of every query received, in arrival order.
func (s *Searcher) Queries() []domain.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SearchQuery, len(s.queries))
	copy(out, s.queries)
	return out
}

// Interpreter is a configurable mock implementation of
// domain.PreferenceInterpreter.
type Interpreter struct {
	prefs     domain.Preferences
	err       error
	mu        sync.Mutex
	callCount int
	lastQuery string
}

// NewInterpreter creates a mock interpreter returning the given preferences.
func NewInterpreter(prefs domain.Preferences) *Interpreter {
	return &Interpreter{prefs: prefs}
}

// WithError configures the interpreter to fail.
func (i *Interpreter) WithError(err error) *Interpreter {
	i.err = err
	return i
}

// InterpretPreferences implements domain.PreferenceInterpreter.
func (i *Interpreter) InterpretPreferences(ctx context.Context, freeText string) (domain.Preferences, error) {
	i.mu.Lock()
	i.callCount++
	i.lastQuery = freeText
	i.mu.Unlock()

	if i.err != nil {
		return domain.Preferences{}, i.err
	}
	return i.prefs, nil
}

// CallCount returns how many times InterpretPreferences was called.
func (i *Interpreter) CallCount() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.callCount
}

// LastQuery returns the most recent free-text query received.
func (i *Interpreter) LastQuery() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.lastQuery
}

// Compile-time interface checks.
var (
	_ domain.OfferSearcher         = (*Searcher)(nil)
	_ domain.PreferenceInterpreter = (*Interpreter)(nil)
)
