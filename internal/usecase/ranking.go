package usecase

import (
	"sort"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
)

// SortFlights returns a new slice sorted by the given criterion. The sort is
// stable, so flights that compare equal keep their relative order. Price,
// duration and stops sort ascending; convenience sorts descending.
func SortFlights(flights []domain.NormalizedFlight, sortBy domain.SortOption) []domain.NormalizedFlight {
	sorted := make([]domain.NormalizedFlight, len(flights))
	copy(sorted, flights)

	sort.SliceStable(sorted, func(i, j int) bool {
		return lessFlights(sorted[i], sorted[j], sortBy)
	})

	return sorted
}

func lessFlights(a, b domain.NormalizedFlight, sortBy domain.SortOption) bool {
	switch sortBy {
	case domain.SortByPrice:
		return a.Price.Total < b.Price.Total
	case domain.SortByDuration:
		return a.TotalDurationMinutes < b.TotalDurationMinutes
	case domain.SortByStops:
		return a.TotalStops < b.TotalStops
	default:
		return a.ConvenienceScore > b.ConvenienceScore
	}
}
