package domain

import (
	"fmt"
	"strings"
)

// SortOption selects the ranking key for flight results.
type SortOption string

// Available sort options.
const (
	// SortByPrice orders by total price ascending (cheapest first).
	SortByPrice SortOption = "price"

	// SortByDuration orders by total duration ascending (shortest first).
	SortByDuration SortOption = "duration"

	// SortByStops orders by total stop count ascending (fewest first).
	SortByStops SortOption = "stops"

	// SortByConvenience orders by convenience score descending (default).
	SortByConvenience SortOption = "convenience"
)

// IsValid reports whether the sort option is a recognized value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByStops, SortByConvenience:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption. Empty or unrecognized
// input falls back to SortByConvenience.
func ParseSortOption(s string) SortOption {
	option := SortOption(strings.ToLower(s))
	if option.IsValid() {
		return option
	}
	return SortByConvenience
}

// Connection caps a search will ever request. Connections beyond two stops
// are never asked for.
const (
	MinStops = 0
	MaxStops = 2
)

// Default result caps.
const (
	DefaultMaxResultsPerBatch = 10
	DefaultMaxResultsTotal    = 15
)

// Valid cabin classes, per the provider's vocabulary.
var validCabinClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
}

// Preferences is the immutable preference set for one search. Unset optional
// fields impose no constraint. Validate once at construction; consumers
// never re-validate.
type Preferences struct {
	// MaxStops is the maximum total stop count, 0 through 2.
	MaxStops int `json:"maxStops"`

	// PreferredAirlines restricts results to offers using at least one of
	// these carriers, and earns those offers a scoring bonus. Empty means
	// no restriction and no bonus.
	PreferredAirlines []string `json:"preferredAirlines,omitempty"`

	// ExcludedAirlines rejects offers using any of these carriers. When a
	// code appears in both lists, exclusion wins.
	ExcludedAirlines []string `json:"excludedAirlines,omitempty"`

	// MaxPrice caps the offer total in the search currency.
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxDurationHours caps the total duration.
	MaxDurationHours *int `json:"maxDurationHours,omitempty"`

	// CabinClass is the requested cabin (ECONOMY, PREMIUM_ECONOMY,
	// BUSINESS, FIRST).
	CabinClass string `json:"cabinClass"`

	// SameAirlineOnly rejects offers that mix carriers.
	SameAirlineOnly bool `json:"sameAirlineOnly"`

	// SortBy selects the ranking key.
	SortBy SortOption `json:"sortBy"`

	// MaxResultsPerBatch caps how many flights one date combination may
	// contribute before aggregation.
	MaxResultsPerBatch int `json:"maxResultsPerBatch"`

	// MaxResultsTotal caps the final aggregated result set.
	MaxResultsTotal int `json:"maxResultsTotal"`
}

// DefaultPreferences returns the preference set used when the caller supplies
// none and the interpreter cannot produce one: no extra filters, widest stop
// allowance, convenience ordering.
func DefaultPreferences() Preferences {
	return Preferences{
		MaxStops:           MaxStops,
		CabinClass:         "ECONOMY",
		SortBy:             SortByConvenience,
		MaxResultsPerBatch: DefaultMaxResultsPerBatch,
		MaxResultsTotal:    DefaultMaxResultsTotal,
	}
}

// Validate checks the preference set for internal consistency.
// Returns a wrapped ErrInvalidRequest error on failure.
func (p *Preferences) Validate() error {
	if p.MaxStops < MinStops || p.MaxStops > MaxStops {
		return fmt.Errorf("%w: maxStops must be between %d and %d, got %d",
			ErrInvalidRequest, MinStops, MaxStops, p.MaxStops)
	}
	if p.MaxPrice != nil && *p.MaxPrice < 0 {
		return fmt.Errorf("%w: maxPrice must not be negative", ErrInvalidRequest)
	}
	if p.MaxDurationHours != nil && *p.MaxDurationHours <= 0 {
		return fmt.Errorf("%w: maxDurationHours must be positive", ErrInvalidRequest)
	}
	if p.CabinClass != "" && !validCabinClasses[p.CabinClass] {
		return fmt.Errorf("%w: cabinClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST; got %q",
			ErrInvalidRequest, p.CabinClass)
	}
	if p.MaxResultsPerBatch < 0 || p.MaxResultsTotal < 0 {
		return fmt.Errorf("%w: result caps must not be negative", ErrInvalidRequest)
	}
	return nil
}

// Normalize fills defaults for unset fields and resolves conflicts between
// the airline lists: a carrier named in both is removed from the preferred
// list, since exclusion takes precedence.
func (p *Preferences) Normalize() {
	if p.CabinClass == "" {
		p.CabinClass = "ECONOMY"
	} else {
		p.CabinClass = strings.ToUpper(p.CabinClass)
	}
	if !p.SortBy.IsValid() {
		p.SortBy = SortByConvenience
	}
	if p.MaxResultsPerBatch == 0 {
		p.MaxResultsPerBatch = DefaultMaxResultsPerBatch
	}
	if p.MaxResultsTotal == 0 {
		p.MaxResultsTotal = DefaultMaxResultsTotal
	}

	p.PreferredAirlines = upperCodes(p.PreferredAirlines)
	p.ExcludedAirlines = upperCodes(p.ExcludedAirlines)

	if len(p.PreferredAirlines) > 0 && len(p.ExcludedAirlines) > 0 {
		excluded := make(map[string]struct{}, len(p.ExcludedAirlines))
		for _, c := range p.ExcludedAirlines {
			excluded[c] = struct{}{}
		}
		kept := p.PreferredAirlines[:0]
		for _, c := range p.PreferredAirlines {
			if _, ok := excluded[c]; !ok {
				kept = append(kept, c)
			}
		}
		p.PreferredAirlines = kept
	}
}

// upperCodes uppercases and trims airline codes, dropping empty entries.
func upperCodes(codes []string) []string {
	if len(codes) == 0 {
		return codes
	}
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
