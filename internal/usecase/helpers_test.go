package usecase

import (
	"time"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
)

// Shared fixture builders for the pipeline tests.

func rawSegment(from, to, carrier, number, duration string) domain.RawSegment {
	return domain.RawSegment{
		Departure:   domain.RawEndpoint{IATACode: from, At: "2026-06-15T08:00:00"},
		Arrival:     domain.RawEndpoint{IATACode: to, At: "2026-06-15T16:00:00"},
		CarrierCode: carrier,
		Number:      number,
		Duration:    duration,
	}
}

func rawOffer(id, total string, segments ...domain.RawSegment) domain.RawOffer {
	return domain.RawOffer{
		ID:    id,
		Price: domain.RawPrice{Currency: "EUR", Total: total},
		Itineraries: []domain.RawItinerary{
			{Segments: segments},
		},
	}
}

func flight(id string, price float64, durationMinutes, stops int, airlines ...string) domain.NormalizedFlight {
	return domain.NormalizedFlight{
		ID:                   id,
		Price:                domain.PriceInfo{Currency: "EUR", Total: price, Base: price},
		TotalDurationMinutes: durationMinutes,
		TotalStops:           stops,
		AirlinesUsed:         domain.NewAirlineSet(airlines...),
		IsSingleAirline:      len(airlines) == 1,
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
