package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
)

func TestNormalizeOffer_SingleSegment(t *testing.T) {
	offer := domain.RawOffer{
		ID: "1",
		Price: domain.RawPrice{
			Currency: "EUR",
			Total:    "450.50",
			Base:     "380.00",
		},
		ValidatingAirlineCodes: []string{"BA"},
		Itineraries: []domain.RawItinerary{
			{
				Duration: "PT7H30M",
				Segments: []domain.RawSegment{
					{
						Departure:   domain.RawEndpoint{IATACode: "JFK", Terminal: "7", At: "2026-06-15T18:30:00"},
						Arrival:     domain.RawEndpoint{IATACode: "LHR", Terminal: "5", At: "2026-06-16T06:00:00"},
						CarrierCode: "BA",
						Number:      "112",
						Aircraft:    domain.RawAircraft{Code: "77W"},
						Duration:    "PT7H30M",
					},
				},
			},
		},
	}

	got, err := NormalizeOffer(offer)
	require.NoError(t, err)

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "EUR", got.Price.Currency)
	assert.Equal(t, 450.50, got.Price.Total)
	assert.Equal(t, 380.00, got.Price.Base)
	assert.Equal(t, 450, got.TotalDurationMinutes)
	assert.Equal(t, 0, got.TotalStops)
	assert.Equal(t, []string{"BA"}, got.AirlinesUsed.Codes())
	assert.True(t, got.IsSingleAirline)
	assert.Equal(t, []string{"BA"}, got.ValidatingAirlines)

	require.Len(t, got.Itineraries, 1)
	leg := got.Itineraries[0]
	assert.Equal(t, 450, leg.DurationMinutes)
	assert.Equal(t, 0, leg.Stops)

	require.Len(t, leg.Segments, 1)
	seg := leg.Segments[0]
	assert.Equal(t, "JFK", seg.Departure.Airport)
	assert.Equal(t, "7", seg.Departure.Terminal)
	assert.Equal(t, "LHR", seg.Arrival.Airport)
	assert.Equal(t, "BA112", seg.FlightNumber)
	assert.Equal(t, "77W", seg.Aircraft)
	assert.Equal(t, 450, seg.DurationMinutes)
	assert.Equal(t, time.Date(2026, 6, 15, 18, 30, 0, 0, time.UTC), seg.Departure.Time)
}

func TestNormalizeOffer_MultiCarrierConnection(t *testing.T) {
	offer := rawOffer("2", "800.00",
		rawSegment("JFK", "DXB", "EK", "202", "PT12H30M"),
		rawSegment("DXB", "SIN", "SQ", "495", "PT7H45M"),
	)

	got, err := NormalizeOffer(offer)
	require.NoError(t, err)

	assert.Equal(t, 1, got.TotalStops)
	assert.Equal(t, 750+465, got.TotalDurationMinutes)
	assert.Equal(t, []string{"EK", "SQ"}, got.AirlinesUsed.Codes())
	assert.False(t, got.IsSingleAirline)
}

func TestNormalizeOffer_LayoverTimeExcluded(t *testing.T) {
	// Two 2h segments with a long gap between them: only airborne time
	// counts, regardless of the wall-clock span.
	offer := rawOffer("3", "300.00",
		domain.RawSegment{
			Departure:   domain.RawEndpoint{IATACode: "AMS", At: "2026-06-15T08:00:00"},
			Arrival:     domain.RawEndpoint{IATACode: "FRA", At: "2026-06-15T10:00:00"},
			CarrierCode: "KL",
			Number:      "1763",
			Duration:    "PT2H",
		},
		domain.RawSegment{
			Departure:   domain.RawEndpoint{IATACode: "FRA", At: "2026-06-15T18:00:00"},
			Arrival:     domain.RawEndpoint{IATACode: "IST", At: "2026-06-15T20:00:00"},
			CarrierCode: "KL",
			Number:      "9115",
			Duration:    "PT2H",
		},
	)

	got, err := NormalizeOffer(offer)
	require.NoError(t, err)
	assert.Equal(t, 240, got.TotalDurationMinutes)
}

func TestNormalizeOffer_OperatingCarrierJoinsAirlineSet(t *testing.T) {
	seg := rawSegment("CDG", "JFK", "AF", "8", "PT8H")
	seg.Operating = domain.RawCarrier{CarrierCode: "DL"}

	got, err := NormalizeOffer(rawOffer("4", "600.00", seg))
	require.NoError(t, err)

	assert.Equal(t, []string{"AF", "DL"}, got.AirlinesUsed.Codes())
	assert.False(t, got.IsSingleAirline)
	assert.Equal(t, "DL", got.Itineraries[0].Segments[0].OperatingCarrier)
	assert.Equal(t, "AF8", got.Itineraries[0].Segments[0].FlightNumber)
}

func TestNormalizeOffer_OperatingSameAsMarketing(t *testing.T) {
	seg := rawSegment("CDG", "JFK", "AF", "8", "PT8H")
	seg.Operating = domain.RawCarrier{CarrierCode: "AF"}

	got, err := NormalizeOffer(rawOffer("5", "600.00", seg))
	require.NoError(t, err)

	assert.Equal(t, []string{"AF"}, got.AirlinesUsed.Codes())
	assert.True(t, got.IsSingleAirline)
	assert.Empty(t, got.Itineraries[0].Segments[0].OperatingCarrier)
}

func TestNormalizeOffer_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		offer domain.RawOffer
	}{
		{
			name:  "missing id",
			offer: domain.RawOffer{Price: domain.RawPrice{Currency: "EUR", Total: "100"}},
		},
		{
			name: "unparsable price total",
			offer: domain.RawOffer{
				ID:          "x",
				Price:       domain.RawPrice{Currency: "EUR", Total: "abc"},
				Itineraries: []domain.RawItinerary{{Segments: []domain.RawSegment{rawSegment("A", "B", "XX", "1", "PT1H")}}},
			},
		},
		{
			name: "missing currency",
			offer: domain.RawOffer{
				ID:          "x",
				Price:       domain.RawPrice{Total: "100"},
				Itineraries: []domain.RawItinerary{{Segments: []domain.RawSegment{rawSegment("A", "B", "XX", "1", "PT1H")}}},
			},
		},
		{
			name: "negative price total",
			offer: domain.RawOffer{
				ID:          "x",
				Price:       domain.RawPrice{Currency: "EUR", Total: "-5"},
				Itineraries: []domain.RawItinerary{{Segments: []domain.RawSegment{rawSegment("A", "B", "XX", "1", "PT1H")}}},
			},
		},
		{
			name:  "no itineraries",
			offer: domain.RawOffer{ID: "x", Price: domain.RawPrice{Currency: "EUR", Total: "100"}},
		},
		{
			name: "itinerary without segments",
			offer: domain.RawOffer{
				ID:          "x",
				Price:       domain.RawPrice{Currency: "EUR", Total: "100"},
				Itineraries: []domain.RawItinerary{{Duration: "PT2H"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeOffer(tt.offer)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeOffer_BaseFallsBackToTotal(t *testing.T) {
	offer := rawOffer("6", "250.00", rawSegment("A", "B", "XX", "1", "PT1H"))

	got, err := NormalizeOffer(offer)
	require.NoError(t, err)
	assert.Equal(t, 250.00, got.Price.Base)
}

func TestNormalizeOffer_BaseNeverExceedsTotal(t *testing.T) {
	offer := rawOffer("7", "200.00", rawSegment("A", "B", "XX", "1", "PT1H"))
	offer.Price.Base = "999.00"

	got, err := NormalizeOffer(offer)
	require.NoError(t, err)
	assert.Equal(t, 200.00, got.Price.Base)
}

func TestNormalizeOffer_UnparsableSegmentTimeIsZero(t *testing.T) {
	seg := rawSegment("A", "B", "XX", "1", "PT1H")
	seg.Departure.At = "not-a-timestamp"

	got, err := NormalizeOffer(rawOffer("8", "100.00", seg))
	require.NoError(t, err)
	assert.True(t, got.Itineraries[0].Segments[0].Departure.Time.IsZero())
}

func TestNormalizeOffer_TravelerFares(t *testing.T) {
	offer := rawOffer("9", "500.00", rawSegment("A", "B", "XX", "1", "PT1H"))
	offer.TravelerPricings = []domain.RawTravelerFare{
		{
			TravelerID:   "1",
			TravelerType: "ADULT",
			Price:        domain.RawPrice{Currency: "EUR", Total: "500.00", Base: "420.00"},
			FareDetails: []domain.RawSegmentFare{
				{
					SegmentID:           "1",
					Cabin:               "ECONOMY",
					FareBasis:           "YIF",
					IncludedCheckedBags: domain.RawBagAllowance{Quantity: 2},
				},
			},
		},
	}

	got, err := NormalizeOffer(offer)
	require.NoError(t, err)

	require.Len(t, got.TravelerFares, 1)
	fare := got.TravelerFares[0]
	assert.Equal(t, "ADULT", fare.TravelerType)
	assert.Equal(t, 500.00, fare.Total)
	assert.Equal(t, 420.00, fare.Base)
	require.Len(t, fare.SegmentFares, 1)
	assert.Equal(t, "ECONOMY", fare.SegmentFares[0].Cabin)
	assert.Equal(t, 2, fare.SegmentFares[0].CheckedBags)
}

func TestNormalizeBatch_SkipsBadRecordsAndCounts(t *testing.T) {
	offers := []domain.RawOffer{
		rawOffer("1", "100.00", rawSegment("A", "B", "XX", "1", "PT1H")),
		{ID: "bad", Price: domain.RawPrice{Currency: "EUR", Total: "oops"}},
		rawOffer("3", "200.00", rawSegment("A", "B", "YY", "2", "PT2H")),
		{},
	}

	flights, skipped := NormalizeBatch(offers)

	assert.Len(t, flights, 2)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, "1", flights[0].ID)
	assert.Equal(t, "3", flights[1].ID)
}

func TestNormalizeBatch_Empty(t *testing.T) {
	flights, skipped := NormalizeBatch(nil)
	assert.Empty(t, flights)
	assert.Zero(t, skipped)
}
