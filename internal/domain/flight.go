// Package domain contains the core entities and rules of the flight search
// assistant. These types are provider-agnostic and form the foundation upon
// which the processing pipeline is built.
package domain

import "time"

// NormalizedFlight is the canonical internal representation of one offer
// after normalization: flattened price, per-leg timing, airline membership
// and totals that the filter, scorer and ranker operate on.
type NormalizedFlight struct {
	// ID is the offer identifier carried from the raw offer, unique within
	// one search batch.
	ID string `json:"id"`

	// Price is the flattened offer-level price.
	Price PriceInfo `json:"price"`

	// Itineraries are the directional journeys in order (outbound, then
	// return for a round trip).
	Itineraries []Itinerary `json:"itineraries"`

	// TotalDurationMinutes sums the leg durations across all itineraries.
	// Layover time between segments is excluded; only airborne segment
	// durations count, matching the provider's own per-segment figures.
	TotalDurationMinutes int `json:"totalDurationMinutes"`

	// TotalStops sums the stop counts across all itineraries.
	TotalStops int `json:"totalStops"`

	// AirlinesUsed holds every carrier code across all segments, marketing
	// and operating alike, in first-seen order.
	AirlinesUsed AirlineSet `json:"airlinesUsed"`

	// IsSingleAirline is true iff exactly one carrier appears on the offer.
	IsSingleAirline bool `json:"isSingleAirline"`

	// ValidatingAirlines carries the ticketing carriers from the raw offer.
	ValidatingAirlines []string `json:"validatingAirlines,omitempty"`

	// TravelerFares is the pass-through per-traveler fare breakdown.
	TravelerFares []TravelerFare `json:"travelerFares,omitempty"`

	// ConvenienceScore is assigned by the scorer and is meaningless before
	// that step. Flights are never mutated after scoring.
	ConvenienceScore float64 `json:"convenienceScore"`

	// DateCombination records which (departure, return) pair produced this
	// flight. Attached after normalization; used for display grouping only.
	DateCombination *DateCombination `json:"dateCombination,omitempty"`
}

// PriceInfo is the flattened offer price.
type PriceInfo struct {
	// Currency is the ISO 4217 currency code.
	Currency string `json:"currency"`

	// Total is the full price including fees and taxes.
	Total float64 `json:"total"`

	// Base is the fare before fees and taxes. Base never exceeds Total.
	Base float64 `json:"base"`
}

// Itinerary is one directional journey composed of one or more segments.
type Itinerary struct {
	// DurationMinutes is the sum of the segment durations on this leg.
	DurationMinutes int `json:"durationMinutes"`

	// Stops is segment count minus one; a single-segment leg is nonstop.
	Stops int `json:"stops"`

	// Segments are the takeoff-to-landing legs in travel order.
	Segments []Segment `json:"segments"`

	// Airlines are the carrier codes used on this leg, in first-seen order.
	Airlines AirlineSet `json:"airlines"`
}

// Segment is one takeoff-to-landing flight within an itinerary.
type Segment struct {
	Departure SegmentPoint `json:"departure"`
	Arrival   SegmentPoint `json:"arrival"`

	// CarrierCode is the marketing carrier.
	CarrierCode string `json:"carrierCode"`

	// FlightNumber is the marketing carrier's designator, e.g. "EK202".
	// The marketing flight number is displayed even when an operating
	// carrier override is present.
	FlightNumber string `json:"flightNumber"`

	// OperatingCarrier is set when another airline flies the segment.
	OperatingCarrier string `json:"operatingCarrier,omitempty"`

	// Aircraft is the equipment type code when known.
	Aircraft string `json:"aircraft,omitempty"`

	// DurationMinutes is the airborne duration of this segment.
	DurationMinutes int `json:"durationMinutes"`
}

// SegmentPoint is a departure or arrival point of a segment.
type SegmentPoint struct {
	// Airport is the IATA airport code.
	Airport string `json:"airport"`

	// Terminal is the terminal identifier when the provider supplies one.
	Terminal string `json:"terminal,omitempty"`

	// Time is the scheduled local time. Zero when the provider's timestamp
	// could not be parsed; display-only, never filtered or scored on.
	Time time.Time `json:"time"`
}

// TravelerFare is the normalized per-traveler fare breakdown.
type TravelerFare struct {
	TravelerID   string        `json:"travelerId"`
	TravelerType string        `json:"travelerType,omitempty"`
	Total        float64       `json:"total"`
	Base         float64       `json:"base"`
	SegmentFares []SegmentFare `json:"segmentFares,omitempty"`
}

// SegmentFare is one traveler's fare detail for one segment.
type SegmentFare struct {
	SegmentID        string `json:"segmentId"`
	Cabin            string `json:"cabin,omitempty"`
	FareBasis        string `json:"fareBasis,omitempty"`
	CheckedBags      int    `json:"checkedBags"`
	CheckedBagWeight int    `json:"checkedBagWeight,omitempty"`
}
