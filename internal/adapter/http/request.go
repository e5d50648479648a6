// Package http provides the HTTP handler layer for the flight search
// assistant. It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SearchAssistantRequest represents the request body for an assisted flight
// search. Dates are given either as a single day or as a range; a range is
// expanded into several concrete search dates server-side.
type SearchAssistantRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LHR")
	Destination string `json:"destination"`

	// DepartureDate is a single departure date in YYYY-MM-DD format.
	// Exactly one of DepartureDate and DepartureDateRange must be set.
	DepartureDate string `json:"departureDate,omitempty"`

	// DepartureDateRange is an inclusive range of candidate departure dates.
	DepartureDateRange *DateRangeDTO `json:"departureDateRange,omitempty"`

	// ReturnDate is a single return date in YYYY-MM-DD format (optional).
	ReturnDate string `json:"returnDate,omitempty"`

	// ReturnDateRange is an inclusive range of candidate return dates.
	// At most one of ReturnDate and ReturnDateRange may be set.
	ReturnDateRange *DateRangeDTO `json:"returnDateRange,omitempty"`

	// Adults is the number of adult passengers (1-9). Defaults to 1.
	Adults int `json:"adults,omitempty"`

	// Children is the number of child passengers.
	Children int `json:"children,omitempty"`

	// Infants is the number of infant passengers.
	Infants int `json:"infants,omitempty"`

	// CurrencyCode is the ISO 4217 pricing currency (optional, e.g. "EUR").
	CurrencyCode string `json:"currencyCode,omitempty"`

	// Query is a free-text description of travel wishes, e.g.
	// "nonstop please, prefer Emirates, under 900 euros". Interpreted
	// server-side when no explicit preferences are given.
	Query string `json:"query,omitempty"`

	// Preferences are explicit search preferences. When set, Query is not
	// interpreted.
	Preferences *PreferencesDTO `json:"preferences,omitempty"`
}

// DateRangeDTO represents an inclusive calendar date range.
type DateRangeDTO struct {
	// Start is the first date of the range (YYYY-MM-DD)
	Start string `json:"start"`

	// End is the last date of the range (YYYY-MM-DD)
	End string `json:"end"`
}

// PreferencesDTO represents explicit search preferences. Unset fields impose
// no constraint.
type PreferencesDTO struct {
	// MaxStops is the maximum number of stops per direction (0-2)
	MaxStops *int `json:"maxStops,omitempty" example:"1"`

	// PreferredAirlines restricts results to these carrier codes
	PreferredAirlines []string `json:"preferredAirlines,omitempty" example:"EK,SQ"`

	// ExcludedAirlines rejects results using these carrier codes
	ExcludedAirlines []string `json:"excludedAirlines,omitempty" example:"FR"`

	// MaxPrice caps the total price in the search currency
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"900"`

	// MaxDurationHours caps the total travel duration in hours
	MaxDurationHours *int `json:"maxDurationHours,omitempty" example:"12"`

	// CabinClass is one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST
	CabinClass string `json:"cabinClass,omitempty" example:"ECONOMY"`

	// SameAirlineOnly rejects offers that mix carriers
	SameAirlineOnly bool `json:"sameAirlineOnly,omitempty"`

	// SortBy is one of: price, duration, stops, convenience
	SortBy string `json:"sortBy,omitempty" example:"price"`

	// MaxResultsPerBatch caps results per searched date combination
	MaxResultsPerBatch int `json:"maxResultsPerBatch,omitempty" example:"10"`

	// MaxResultsTotal caps the final aggregated result set
	MaxResultsTotal int `json:"maxResultsTotal,omitempty" example:"15"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyPattern    = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Valid cabin classes, uppercase.
var validCabinClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
	"":                true, // Empty is valid (defaults to economy)
}

// Valid sort options.
var validSortOptions = map[string]bool{
	"price":       true,
	"duration":    true,
	"stops":       true,
	"convenience": true,
	"":            true, // Empty is valid (defaults to convenience)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Airport and airline codes are normalized to uppercase in place.
func (r *SearchAssistantRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateOriginDestinationDifferent(errs)
	r.validateDates(errs)
	r.validatePassengers(errs)
	r.validateCurrency(errs)
	r.validatePreferences(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchAssistantRequest) validateOrigin(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
		return
	}

	origin := strings.ToUpper(r.Origin)
	if !airportCodePattern.MatchString(origin) {
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin
}

func (r *SearchAssistantRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
		return
	}

	dest := strings.ToUpper(r.Destination)
	if !airportCodePattern.MatchString(dest) {
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest
}

func (r *SearchAssistantRequest) validateOriginDestinationDifferent(errs *ValidationErrors) {
	if r.Origin != "" && r.Destination != "" &&
		strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *SearchAssistantRequest) validateDates(errs *ValidationErrors) {
	switch {
	case r.DepartureDate == "" && r.DepartureDateRange == nil:
		errs.Add("departureDate", "departureDate or departureDateRange is required")
	case r.DepartureDate != "" && r.DepartureDateRange != nil:
		errs.Add("departureDate", "departureDate and departureDateRange are mutually exclusive")
	}

	if r.ReturnDate != "" && r.ReturnDateRange != nil {
		errs.Add("returnDate", "returnDate and returnDateRange are mutually exclusive")
	}

	if r.DepartureDate != "" {
		validateDate(errs, "departureDate", r.DepartureDate)
	}
	if r.DepartureDateRange != nil {
		validateDateRange(errs, "departureDateRange", r.DepartureDateRange)
	}
	if r.ReturnDate != "" {
		validateDate(errs, "returnDate", r.ReturnDate)
	}
	if r.ReturnDateRange != nil {
		validateDateRange(errs, "returnDateRange", r.ReturnDateRange)
	}

	// When both sides are single dates the ordering can be checked here;
	// range combinations are resolved during planning.
	if r.DepartureDate != "" && r.ReturnDate != "" {
		dep, errDep := time.Parse("2006-01-02", r.DepartureDate)
		ret, errRet := time.Parse("2006-01-02", r.ReturnDate)
		if errDep == nil && errRet == nil && ret.Before(dep) {
			errs.Add("returnDate", "returnDate must not be before departureDate")
		}
	}
}

// validateDate checks a single YYYY-MM-DD date field.
func validateDate(errs *ValidationErrors, field, value string) {
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

// validateDateRange checks a start/end date range field.
func validateDateRange(errs *ValidationErrors, field string, dr *DateRangeDTO) {
	if dr.Start == "" {
		errs.Add(field+".start", "start is required when "+field+" is specified")
	} else {
		validateDate(errs, field+".start", dr.Start)
	}
	if dr.End == "" {
		errs.Add(field+".end", "end is required when "+field+" is specified")
	} else {
		validateDate(errs, field+".end", dr.End)
	}

	if dr.Start != "" && dr.End != "" {
		start, errStart := time.Parse("2006-01-02", dr.Start)
		end, errEnd := time.Parse("2006-01-02", dr.End)
		if errStart == nil && errEnd == nil && end.Before(start) {
			errs.Add(field, "end must not be before start")
		}
	}
}

func (r *SearchAssistantRequest) validatePassengers(errs *ValidationErrors) {
	if r.Adults < 0 {
		errs.Add("adults", "adults must be a non-negative number")
	}
	if r.Adults > 9 {
		errs.Add("adults", "adults cannot exceed 9")
	}
	if r.Children < 0 {
		errs.Add("children", "children must be a non-negative number")
	}
	if r.Infants < 0 {
		errs.Add("infants", "infants must be a non-negative number")
	}
}

func (r *SearchAssistantRequest) validateCurrency(errs *ValidationErrors) {
	if r.CurrencyCode == "" {
		return
	}
	code := strings.ToUpper(r.CurrencyCode)
	if !currencyPattern.MatchString(code) {
		errs.Add("currencyCode", "currencyCode must be a valid 3-letter ISO 4217 code")
		return
	}
	r.CurrencyCode = code
}

func (r *SearchAssistantRequest) validatePreferences(errs *ValidationErrors) {
	p := r.Preferences
	if p == nil {
		return
	}

	if p.MaxStops != nil && (*p.MaxStops < 0 || *p.MaxStops > 2) {
		errs.Add("preferences.maxStops", "maxStops must be between 0 and 2")
	}
	if p.MaxPrice != nil && *p.MaxPrice < 0 {
		errs.Add("preferences.maxPrice", "maxPrice must be a positive number")
	}
	if p.MaxDurationHours != nil && *p.MaxDurationHours <= 0 {
		errs.Add("preferences.maxDurationHours", "maxDurationHours must be a positive number")
	}

	if !validCabinClasses[strings.ToUpper(p.CabinClass)] {
		errs.Add("preferences.cabinClass", "cabinClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST")
	}
	if !validSortOptions[strings.ToLower(p.SortBy)] {
		errs.Add("preferences.sortBy", "sortBy must be one of: price, duration, stops, convenience")
	}

	validateAirlineCodes(errs, "preferences.preferredAirlines", p.PreferredAirlines)
	validateAirlineCodes(errs, "preferences.excludedAirlines", p.ExcludedAirlines)

	if p.MaxResultsPerBatch < 0 {
		errs.Add("preferences.maxResultsPerBatch", "maxResultsPerBatch must be a non-negative number")
	}
	if p.MaxResultsTotal < 0 {
		errs.Add("preferences.maxResultsTotal", "maxResultsTotal must be a non-negative number")
	}
}

// validateAirlineCodes checks and uppercases a list of carrier codes in place.
func validateAirlineCodes(errs *ValidationErrors, field string, codes []string) {
	for i, code := range codes {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if len(normalized) < 2 || len(normalized) > 3 {
			errs.Add(fmt.Sprintf("%s[%d]", field, i),
				"airline code must be 2 or 3 characters")
		}
		codes[i] = normalized
	}
}
