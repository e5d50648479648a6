package usecase

import (
	"fmt"
	"math"
	"sort"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
)

// Recommendation thresholds. Price dispersion above half the minimum fare is
// flagged; the single-airline advisory fires when fewer than 80% of results
// are single-airline bookings.
const (
	priceDispersionThreshold = 0.5
	singleAirlineRatio       = 0.8

	topAirlineCount = 10
)

// BatchResult carries the filtered, scored flights of one dispatched date
// combination. Index preserves the planner's combination order so aggregation
// stays deterministic regardless of which batch finished first.
type BatchResult struct {
	Index       int
	Combination domain.DateCombination
	Flights     []domain.NormalizedFlight
}

// AggregateBatches merges the per-combination batches into the final ranked
// result set. Flights are flattened in combination order, tagged with their
// originating date combination, re-sorted globally with a stable sort, and
// truncated to maxTotal.
func AggregateBatches(batches []BatchResult, sortBy domain.SortOption, maxTotal int) []domain.NormalizedFlight {
	ordered := make([]BatchResult, len(batches))
	copy(ordered, batches)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	var merged []domain.NormalizedFlight
	for _, batch := range ordered {
		combo := batch.Combination
		for _, flight := range batch.Flights {
			flight.DateCombination = &combo
			merged = append(merged, flight)
		}
	}

	merged = SortFlights(merged, sortBy)
	if maxTotal > 0 && len(merged) > maxTotal {
		merged = merged[:maxTotal]
	}
	return merged
}

// Analyze computes the summary statistics and textual recommendations for the
// final result set. A nil Analysis is returned for an empty set.
func Analyze(flights []domain.NormalizedFlight, prefs domain.Preferences) *domain.Analysis {
	if len(flights) == 0 {
		return nil
	}

	analysis := &domain.Analysis{
		Price:    priceStats(flights),
		Duration: durationStats(flights),
		Stops:    stopStats(flights),
		Airlines: airlineDistribution(flights),
	}
	analysis.Recommendations = recommendations(flights, analysis, prefs)
	return analysis
}

func priceStats(flights []domain.NormalizedFlight) domain.PriceStats {
	stats := domain.PriceStats{
		Min:      flights[0].Price.Total,
		Max:      flights[0].Price.Total,
		Currency: flights[0].Price.Currency,
	}

	var sum float64
	for _, f := range flights {
		total := f.Price.Total
		stats.Min = math.Min(stats.Min, total)
		stats.Max = math.Max(stats.Max, total)
		sum += total
	}
	stats.Avg = roundTo(sum/float64(len(flights)), 2)
	return stats
}

func durationStats(flights []domain.NormalizedFlight) domain.DurationStats {
	minMinutes := flights[0].TotalDurationMinutes
	maxMinutes := flights[0].TotalDurationMinutes

	var sum int
	for _, f := range flights {
		if f.TotalDurationMinutes < minMinutes {
			minMinutes = f.TotalDurationMinutes
		}
		if f.TotalDurationMinutes > maxMinutes {
			maxMinutes = f.TotalDurationMinutes
		}
		sum += f.TotalDurationMinutes
	}

	return domain.DurationStats{
		MinHours: hoursOf(minMinutes),
		MaxHours: hoursOf(maxMinutes),
		AvgHours: roundTo(float64(sum)/float64(len(flights))/60.0, 1),
	}
}

func stopStats(flights []domain.NormalizedFlight) domain.StopStats {
	var stats domain.StopStats
	for _, f := range flights {
		switch {
		case f.TotalStops == 0:
			stats.Nonstop++
		case f.TotalStops == 1:
			stats.OneStop++
		default:
			stats.MultiStop++
		}
	}
	return stats
}

// airlineDistribution counts airline appearances across all results and
// returns the top ten by frequency. Ties keep first-seen order, which the
// stable sort preserves.
func airlineDistribution(flights []domain.NormalizedFlight) []domain.AirlineCount {
	counts := make(map[string]int)
	var firstSeen []string

	for _, f := range flights {
		for _, code := range f.AirlinesUsed.Codes() {
			if _, ok := counts[code]; !ok {
				firstSeen = append(firstSeen, code)
			}
			counts[code]++
		}
	}

	dist := make([]domain.AirlineCount, 0, len(firstSeen))
	for _, code := range firstSeen {
		dist = append(dist, domain.AirlineCount{Code: code, Count: counts[code]})
	}
	sort.SliceStable(dist, func(i, j int) bool { return dist[i].Count > dist[j].Count })

	if len(dist) > topAirlineCount {
		dist = dist[:topAirlineCount]
	}
	return dist
}

func recommendations(flights []domain.NormalizedFlight, analysis *domain.Analysis, prefs domain.Preferences) []string {
	var recs []string

	if len(flights) > 1 && analysis.Price.Min > 0 {
		dispersion := (analysis.Price.Max - analysis.Price.Min) / analysis.Price.Min
		if dispersion > priceDispersionThreshold {
			recs = append(recs, fmt.Sprintf(
				"Price varies significantly (%.0f-%.0f %s). Book early for better deals.",
				analysis.Price.Min, analysis.Price.Max, analysis.Price.Currency))
		}
	}

	if cheapest, ok := cheapestNonstop(flights); ok {
		recs = append(recs, fmt.Sprintf(
			"Cheapest nonstop: %.1fh for %.0f %s",
			float64(cheapest.TotalDurationMinutes)/60.0, cheapest.Price.Total, cheapest.Price.Currency))
	} else if prefs.MaxStops == 0 {
		recs = append(recs, "No nonstop flights found. Consider allowing one stop to see more options.")
	}

	singleAirline := 0
	for _, f := range flights {
		if f.IsSingleAirline {
			singleAirline++
		}
	}
	if singleAirline > 0 && float64(singleAirline) < float64(len(flights))*singleAirlineRatio {
		recs = append(recs, "Consider single-airline bookings for easier rebooking and consistent service.")
	}

	return recs
}

func cheapestNonstop(flights []domain.NormalizedFlight) (domain.NormalizedFlight, bool) {
	var best domain.NormalizedFlight
	found := false
	for _, f := range flights {
		if f.TotalStops != 0 {
			continue
		}
		if !found || f.Price.Total < best.Price.Total {
			best = f
			found = true
		}
	}
	return best, found
}

func hoursOf(minutes int) float64 {
	return roundTo(float64(minutes)/60.0, 1)
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
