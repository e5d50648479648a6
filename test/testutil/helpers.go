// Package testutil provides shared fixture builders and helpers for unit and
// integration tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// OfferSpec describes one raw offer to build. Zero values fall back to a
// simple nonstop economy offer.
type OfferSpec struct {
	ID       string
	Total    float64
	Currency string
	Carrier  string
	Segments int
	// DurationPerSegment is the ISO-8601 duration of each segment.
	DurationPerSegment string
}

// BuildRawOffer constructs a provider-shaped offer from the given shape.
func BuildRawOffer(spec OfferSpec) domain.RawOffer {
	if spec.Currency == "" {
		spec.Currency = "EUR"
	}
	if spec.Carrier == "" {
		spec.Carrier = "BA"
	}
	if spec.Segments < 1 {
		spec.Segments = 1
	}
	if spec.DurationPerSegment == "" {
		spec.DurationPerSegment = "PT4H"
	}

	segments := make([]domain.RawSegment, spec.Segments)
	airports := []string{"JFK", "CDG", "FRA", "LHR"}
	depart := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)
	for i := range segments {
		from := airports[i%len(airports)]
		to := airports[(i+1)%len(airports)]
		segments[i] = domain.RawSegment{
			ID:          fmt.Sprintf("%s-seg-%d", spec.ID, i+1),
			Departure:   domain.RawEndpoint{IATACode: from, At: depart.Format(time.RFC3339)},
			Arrival:     domain.RawEndpoint{IATACode: to, At: depart.Add(4 * time.Hour).Format(time.RFC3339)},
			CarrierCode: spec.Carrier,
			Number:      fmt.Sprintf("%d", 100+i),
			Duration:    spec.DurationPerSegment,
		}
		depart = depart.Add(6 * time.Hour)
	}

	return domain.RawOffer{
		ID: spec.ID,
		Price: domain.RawPrice{
			Currency: spec.Currency,
			Total:    fmt.Sprintf("%.2f", spec.Total),
			Base:     fmt.Sprintf("%.2f", spec.Total*0.8),
		},
		ValidatingAirlineCodes: []string{spec.Carrier},
		Itineraries: []domain.RawItinerary{
			{Duration: spec.DurationPerSegment, Segments: segments},
		},
	}
}

// BuildRawOffers constructs several offers with ascending prices starting at
// basePrice, stepping by 50 per offer.
func BuildRawOffers(carrier string, basePrice float64, count int) []domain.RawOffer {
	offers := make([]domain.RawOffer, count)
	for i := range offers {
		offers[i] = BuildRawOffer(OfferSpec{
			ID:      fmt.Sprintf("%s-offer-%d", carrier, i+1),
			Total:   basePrice + float64(i)*50,
			Carrier: carrier,
		})
	}
	return offers
}

// BuildFlight constructs a scored, normalized flight for aggregation tests.
func BuildFlight(id string, price float64, durationMinutes, stops int, airlines ...string) domain.NormalizedFlight {
	if len(airlines) == 0 {
		airlines = []string{"BA"}
	}
	return domain.NormalizedFlight{
		ID: id,
		Price: domain.PriceInfo{
			Currency: "EUR",
			Total:    price,
			Base:     price * 0.8,
		},
		TotalDurationMinutes: durationMinutes,
		TotalStops:           stops,
		AirlinesUsed:         domain.NewAirlineSet(airlines...),
		IsSingleAirline:      len(airlines) == 1,
	}
}
