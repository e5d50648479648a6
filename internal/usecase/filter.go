package usecase

import "github.com/travel-assist/flight-search-assistant/internal/domain"

// MatchesPreferences reports whether a flight survives every active
// preference constraint. Checks run cheapest-first and short-circuit on the
// first failure.
func MatchesPreferences(flight domain.NormalizedFlight, prefs domain.Preferences) bool {
	if flight.TotalStops > prefs.MaxStops {
		return false
	}

	if len(prefs.PreferredAirlines) > 0 {
		if !flight.AirlinesUsed.ContainsAny(prefs.PreferredAirlines) {
			return false
		}
	}

	for _, code := range prefs.ExcludedAirlines {
		if flight.AirlinesUsed.Contains(code) {
			return false
		}
	}

	if prefs.MaxPrice != nil && flight.Price.Total > *prefs.MaxPrice {
		return false
	}

	if prefs.MaxDurationHours != nil && flight.TotalDurationMinutes > *prefs.MaxDurationHours*60 {
		return false
	}

	if prefs.SameAirlineOnly && !flight.IsSingleAirline {
		return false
	}

	return true
}

// ApplyPreferences filters a batch of flights against the preferences,
// returning the survivors in their original order and the number of flights
// rejected. The input slice is not modified.
func ApplyPreferences(flights []domain.NormalizedFlight, prefs domain.Preferences) ([]domain.NormalizedFlight, int) {
	kept := make([]domain.NormalizedFlight, 0, len(flights))
	for _, flight := range flights {
		if MatchesPreferences(flight, prefs) {
			kept = append(kept, flight)
		}
	}
	return kept, len(flights) - len(kept)
}
