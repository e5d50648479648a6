// Package usecase implements the offer-processing pipeline: normalization,
// preference filtering, convenience scoring, ranking and cross-batch
// aggregation, orchestrated by the assistant use case.
package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
)

// NormalizeOffer converts one raw provider offer into the canonical internal
// flight representation. It returns an error when the record is structurally
// unusable (missing id, price or itinerary data); the caller skips and counts
// such records instead of aborting the batch.
func NormalizeOffer(offer domain.RawOffer) (domain.NormalizedFlight, error) {
	if offer.ID == "" {
		return domain.NormalizedFlight{}, fmt.Errorf("offer has no id")
	}

	price, err := normalizePrice(offer.Price)
	if err != nil {
		return domain.NormalizedFlight{}, fmt.Errorf("offer %s: %w", offer.ID, err)
	}

	if len(offer.Itineraries) == 0 {
		return domain.NormalizedFlight{}, fmt.Errorf("offer %s has no itineraries", offer.ID)
	}

	flight := domain.NormalizedFlight{
		ID:                 offer.ID,
		Price:              price,
		Itineraries:        make([]domain.Itinerary, 0, len(offer.Itineraries)),
		ValidatingAirlines: offer.ValidatingAirlineCodes,
		TravelerFares:      normalizeTravelerFares(offer.TravelerPricings),
	}

	for _, rawItin := range offer.Itineraries {
		itin, err := normalizeItinerary(rawItin)
		if err != nil {
			return domain.NormalizedFlight{}, fmt.Errorf("offer %s: %w", offer.ID, err)
		}

		flight.Itineraries = append(flight.Itineraries, itin)
		flight.TotalDurationMinutes += itin.DurationMinutes
		flight.TotalStops += itin.Stops
		flight.AirlinesUsed.AddAll(itin.Airlines)
	}

	flight.IsSingleAirline = flight.AirlinesUsed.Len() == 1

	return flight, nil
}

// normalizePrice flattens the raw price block. The total is required; a
// missing or unparsable base falls back to the total, and the base never
// exceeds the total.
func normalizePrice(raw domain.RawPrice) (domain.PriceInfo, error) {
	if raw.Currency == "" {
		return domain.PriceInfo{}, fmt.Errorf("price has no currency")
	}

	total, err := strconv.ParseFloat(raw.Total, 64)
	if err != nil {
		return domain.PriceInfo{}, fmt.Errorf("unparsable price total %q", raw.Total)
	}
	if total < 0 {
		return domain.PriceInfo{}, fmt.Errorf("negative price total %v", total)
	}

	base := total
	if raw.Base != "" {
		if parsed, err := strconv.ParseFloat(raw.Base, 64); err == nil && parsed >= 0 {
			base = parsed
		}
	}
	if base > total {
		base = total
	}

	return domain.PriceInfo{
		Currency: raw.Currency,
		Total:    total,
		Base:     base,
	}, nil
}

// normalizeItinerary converts one raw leg. Leg duration is the sum of the
// per-segment durations; ground time between segments is excluded, matching
// the provider's own per-segment figures. The provider's itinerary-level
// duration string is ignored even when it disagrees; switching to it would
// change every downstream score.
func normalizeItinerary(raw domain.RawItinerary) (domain.Itinerary, error) {
	if len(raw.Segments) == 0 {
		return domain.Itinerary{}, fmt.Errorf("itinerary has no segments")
	}

	itin := domain.Itinerary{
		Stops:    len(raw.Segments) - 1,
		Segments: make([]domain.Segment, 0, len(raw.Segments)),
	}

	for _, rawSeg := range raw.Segments {
		seg := normalizeSegment(rawSeg)
		itin.Segments = append(itin.Segments, seg)
		itin.DurationMinutes += seg.DurationMinutes

		// The marketing carrier always joins the airline set. A distinct
		// operating carrier joins it too: the passenger boards that
		// airline's metal, and filters must see it.
		itin.Airlines.Add(seg.CarrierCode)
		if seg.OperatingCarrier != "" {
			itin.Airlines.Add(seg.OperatingCarrier)
		}
	}

	return itin, nil
}

// normalizeSegment converts one raw segment. Times are parsed leniently:
// a timestamp that does not parse leaves the zero time, since segment times
// are display-only.
func normalizeSegment(raw domain.RawSegment) domain.Segment {
	seg := domain.Segment{
		Departure: domain.SegmentPoint{
			Airport:  raw.Departure.IATACode,
			Terminal: raw.Departure.Terminal,
			Time:     parseSegmentTime(raw.Departure.At),
		},
		Arrival: domain.SegmentPoint{
			Airport:  raw.Arrival.IATACode,
			Terminal: raw.Arrival.Terminal,
			Time:     parseSegmentTime(raw.Arrival.At),
		},
		CarrierCode:     raw.CarrierCode,
		FlightNumber:    raw.CarrierCode + raw.Number,
		Aircraft:        raw.Aircraft.Code,
		DurationMinutes: domain.ParseISODuration(raw.Duration),
	}

	if raw.Operating.CarrierCode != "" && raw.Operating.CarrierCode != raw.CarrierCode {
		seg.OperatingCarrier = raw.Operating.CarrierCode
	}

	return seg
}

// parseSegmentTime parses the provider's local timestamps, which come with or
// without a zone offset.
func parseSegmentTime(at string) time.Time {
	if t, err := time.Parse(time.RFC3339, at); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", at); err == nil {
		return t
	}
	return time.Time{}
}

// normalizeTravelerFares carries the per-traveler fare breakdown through
// without interpreting it.
func normalizeTravelerFares(raw []domain.RawTravelerFare) []domain.TravelerFare {
	if len(raw) == 0 {
		return nil
	}

	fares := make([]domain.TravelerFare, 0, len(raw))
	for _, rt := range raw {
		fare := domain.TravelerFare{
			TravelerID:   rt.TravelerID,
			TravelerType: rt.TravelerType,
		}
		fare.Total, _ = strconv.ParseFloat(rt.Price.Total, 64)
		fare.Base, _ = strconv.ParseFloat(rt.Price.Base, 64)
		if rt.Price.Base == "" {
			fare.Base = fare.Total
		}

		for _, sf := range rt.FareDetails {
			fare.SegmentFares = append(fare.SegmentFares, domain.SegmentFare{
				SegmentID:        sf.SegmentID,
				Cabin:            sf.Cabin,
				FareBasis:        sf.FareBasis,
				CheckedBags:      sf.IncludedCheckedBags.Quantity,
				CheckedBagWeight: sf.IncludedCheckedBags.Weight,
			})
		}
		fares = append(fares, fare)
	}
	return fares
}

// NormalizeBatch converts a slice of raw offers, skipping unusable records.
// It returns the normalized flights and the number of records skipped.
func NormalizeBatch(offers []domain.RawOffer) ([]domain.NormalizedFlight, int) {
	flights := make([]domain.NormalizedFlight, 0, len(offers))
	skipped := 0

	for _, offer := range offers {
		flight, err := NormalizeOffer(offer)
		if err != nil {
			skipped++
			continue
		}
		flights = append(flights, flight)
	}

	return flights, skipped
}
