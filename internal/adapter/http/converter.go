package http

import (
	"time"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
	"github.com/travel-assist/flight-search-assistant/internal/usecase"
)

// ToSearchRequest converts a validated SearchAssistantRequest into the use
// case request. Dates have already passed format validation, so parse errors
// here degrade to unset fields rather than failing the call.
func ToSearchRequest(req *SearchAssistantRequest) usecase.SearchRequest {
	adults := req.Adults
	if adults < 1 {
		adults = 1
	}

	return usecase.SearchRequest{
		Origin:       req.Origin,
		Destination:  req.Destination,
		Dates:        toTravelDates(req),
		Adults:       adults,
		Children:     req.Children,
		Infants:      req.Infants,
		CurrencyCode: req.CurrencyCode,
		Query:        req.Query,
		Preferences:  ToDomainPreferences(req.Preferences),
	}
}

// toTravelDates maps the request's date fields onto domain.TravelDates.
func toTravelDates(req *SearchAssistantRequest) domain.TravelDates {
	var dates domain.TravelDates

	if req.DepartureDate != "" {
		dates.DepartureDate = parseDate(req.DepartureDate)
	}
	if req.DepartureDateRange != nil {
		dates.DepartureRange = toDateRange(req.DepartureDateRange)
	}
	if req.ReturnDate != "" {
		dates.ReturnDate = parseDate(req.ReturnDate)
	}
	if req.ReturnDateRange != nil {
		dates.ReturnRange = toDateRange(req.ReturnDateRange)
	}

	return dates
}

// toDateRange converts a DateRangeDTO to a domain.DateRange.
func toDateRange(dto *DateRangeDTO) *domain.DateRange {
	start := parseDate(dto.Start)
	end := parseDate(dto.End)
	if start == nil || end == nil {
		return nil
	}
	return &domain.DateRange{Start: *start, End: *end}
}

// parseDate parses a YYYY-MM-DD string, returning nil when unparsable.
func parseDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// ToDomainPreferences converts a PreferencesDTO to domain preferences. Unset
// DTO fields take the default values; a nil DTO returns nil, letting the use
// case decide between query interpretation and defaults.
func ToDomainPreferences(dto *PreferencesDTO) *domain.Preferences {
	if dto == nil {
		return nil
	}

	prefs := domain.DefaultPreferences()

	if dto.MaxStops != nil {
		prefs.MaxStops = *dto.MaxStops
	}
	prefs.PreferredAirlines = dto.PreferredAirlines
	prefs.ExcludedAirlines = dto.ExcludedAirlines
	prefs.MaxPrice = dto.MaxPrice
	prefs.MaxDurationHours = dto.MaxDurationHours
	if dto.CabinClass != "" {
		prefs.CabinClass = dto.CabinClass
	}
	prefs.SameAirlineOnly = dto.SameAirlineOnly
	if dto.SortBy != "" {
		prefs.SortBy = domain.ParseSortOption(dto.SortBy)
	}
	if dto.MaxResultsPerBatch > 0 {
		prefs.MaxResultsPerBatch = dto.MaxResultsPerBatch
	}
	if dto.MaxResultsTotal > 0 {
		prefs.MaxResultsTotal = dto.MaxResultsTotal
	}

	prefs.Normalize()
	return &prefs
}
