package domain

import (
	"fmt"
	"regexp"
	"time"
)

// airportCodeRegex matches IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// SearchQuery is one concrete request to the flight-search provider: a route,
// a single date combination, passenger counts and the provider-side filters
// the preference set allows pushing down.
type SearchQuery struct {
	// Origin is the IATA code of the departure airport.
	Origin string

	// Destination is the IATA code of the arrival airport.
	Destination string

	// DepartureDate is the outbound date.
	DepartureDate time.Time

	// ReturnDate makes the query round-trip when set.
	ReturnDate *time.Time

	// Adults is the number of adult passengers, 1 through 9.
	Adults int

	// Children and Infants are optional passenger counts.
	Children int
	Infants  int

	// CabinClass is the provider cabin vocabulary (ECONOMY, ...).
	CabinClass string

	// IncludedAirlines and ExcludedAirlines are pushed down to the provider
	// when set, narrowing results before they ever reach the pipeline.
	IncludedAirlines []string
	ExcludedAirlines []string

	// NonStop restricts the provider to nonstop offers.
	NonStop bool

	// MaxPrice caps the per-traveler price at the provider.
	MaxPrice *float64

	// CurrencyCode selects the pricing currency.
	CurrencyCode string

	// MaxOffers caps how many raw offers the provider returns.
	MaxOffers int
}

// Validate checks the query before dispatch.
// Returns a wrapped ErrInvalidRequest error on failure.
func (q *SearchQuery) Validate() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Origin)
	}
	if q.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Destination)
	}
	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}
	if q.DepartureDate.IsZero() {
		return fmt.Errorf("%w: departure date is required", ErrInvalidRequest)
	}
	if q.ReturnDate != nil && q.ReturnDate.Before(q.DepartureDate) {
		return fmt.Errorf("%w: return date precedes departure date", ErrInvalidRequest)
	}
	if q.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if q.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}
	if q.Children < 0 || q.Infants < 0 {
		return fmt.Errorf("%w: passenger counts must not be negative", ErrInvalidRequest)
	}
	return nil
}

// SetDefaults applies defaults to empty optional fields.
func (q *SearchQuery) SetDefaults() {
	if q.Adults == 0 {
		q.Adults = 1
	}
	if q.CabinClass == "" {
		q.CabinClass = "ECONOMY"
	}
	if q.CurrencyCode == "" {
		q.CurrencyCode = "EUR"
	}
	if q.MaxOffers == 0 {
		q.MaxOffers = 50
	}
}
