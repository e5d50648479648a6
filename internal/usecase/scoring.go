package usecase

import "github.com/travel-assist/flight-search-assistant/internal/domain"

// Convenience score component weights. Price, duration and stops are each
// mapped onto a 0..100 sub-score before weighting; airline bonuses are flat
// additions. The final score is clamped to [0, 100].
const (
	priceWeight    = 0.4
	durationWeight = 0.3
	stopsWeight    = 0.2

	priceDivisor        = 50.0
	durationHourPenalty = 2.0
	stopPenalty         = 25.0

	singleAirlineBonus    = 10.0
	preferredAirlineBonus = 15.0
)

// ConvenienceScore computes the composite 0..100 convenience score for one
// flight. Higher is better: cheap, short, nonstop single-airline flights on a
// preferred carrier approach 100.
func ConvenienceScore(flight domain.NormalizedFlight, prefs domain.Preferences) float64 {
	priceScore := 100.0 - min(flight.Price.Total/priceDivisor, 100.0)

	hours := float64(flight.TotalDurationMinutes) / 60.0
	durationScore := 100.0 - min(hours*durationHourPenalty, 100.0)

	stopsScore := 100.0 - float64(flight.TotalStops)*stopPenalty

	score := priceWeight*priceScore + durationWeight*durationScore + stopsWeight*stopsScore

	if flight.IsSingleAirline {
		score += singleAirlineBonus
	}
	if len(prefs.PreferredAirlines) > 0 && flight.AirlinesUsed.ContainsAny(prefs.PreferredAirlines) {
		score += preferredAirlineBonus
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ScoreFlights assigns a convenience score to every flight in place.
func ScoreFlights(flights []domain.NormalizedFlight, prefs domain.Preferences) {
	for i := range flights {
		flights[i].ConvenienceScore = ConvenienceScore(flights[i], prefs)
	}
}
