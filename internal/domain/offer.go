package domain

// RawOffer is one priced, bookable offer exactly as the flight-offers provider
// returns it. The shape mirrors the provider's wire format; monetary amounts
// arrive as decimal strings and duration fields use the compact ISO-8601
// notation. RawOffer is an opaque input to the pipeline; only the normalizer
// reads it.
type RawOffer struct {
	ID                      string            `json:"id"`
	Source                  string            `json:"source,omitempty"`
	OneWay                  bool              `json:"oneWay,omitempty"`
	LastTicketingDate       string            `json:"lastTicketingDate,omitempty"`
	Price                   RawPrice          `json:"price"`
	ValidatingAirlineCodes  []string          `json:"validatingAirlineCodes,omitempty"`
	Itineraries             []RawItinerary    `json:"itineraries"`
	TravelerPricings        []RawTravelerFare `json:"travelerPricings,omitempty"`
	InstantTicketingRequired bool             `json:"instantTicketingRequired,omitempty"`
}

// RawPrice is the offer-level price block.
type RawPrice struct {
	Currency string   `json:"currency"`
	Total    string   `json:"total"`
	Base     string   `json:"base,omitempty"`
	Fees     []RawFee `json:"fees,omitempty"`
}

// RawFee is one provider fee line.
type RawFee struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

// RawItinerary is one directional journey within an offer.
type RawItinerary struct {
	Duration string       `json:"duration"`
	Segments []RawSegment `json:"segments"`
}

// RawSegment is one takeoff-to-landing leg within an itinerary.
type RawSegment struct {
	ID            string      `json:"id,omitempty"`
	Departure     RawEndpoint `json:"departure"`
	Arrival       RawEndpoint `json:"arrival"`
	CarrierCode   string      `json:"carrierCode"`
	Number        string      `json:"number"`
	Aircraft      RawAircraft `json:"aircraft,omitempty"`
	Operating     RawCarrier  `json:"operating,omitempty"`
	Duration      string      `json:"duration,omitempty"`
	NumberOfStops int         `json:"numberOfStops,omitempty"`
}

// RawEndpoint is a segment departure or arrival point.
type RawEndpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// RawAircraft identifies the equipment type.
type RawAircraft struct {
	Code string `json:"code,omitempty"`
}

// RawCarrier is an operating-carrier override.
type RawCarrier struct {
	CarrierCode string `json:"carrierCode,omitempty"`
}

// RawTravelerFare is the per-traveler fare breakdown. The pipeline carries it
// through normalization without interpreting it.
type RawTravelerFare struct {
	TravelerID   string           `json:"travelerId"`
	FareOption   string           `json:"fareOption,omitempty"`
	TravelerType string           `json:"travelerType,omitempty"`
	Price        RawPrice         `json:"price"`
	FareDetails  []RawSegmentFare `json:"fareDetailsBySegment,omitempty"`
}

// RawSegmentFare is the fare detail for one segment of one traveler.
type RawSegmentFare struct {
	SegmentID       string     `json:"segmentId"`
	Cabin           string     `json:"cabin,omitempty"`
	FareBasis       string     `json:"fareBasis,omitempty"`
	BrandedFare     string     `json:"brandedFare,omitempty"`
	Class           string     `json:"class,omitempty"`
	IncludedCheckedBags RawBagAllowance `json:"includedCheckedBags,omitempty"`
}

// RawBagAllowance is the checked-bag allowance for one segment fare.
type RawBagAllowance struct {
	Quantity int `json:"quantity,omitempty"`
	Weight   int `json:"weight,omitempty"`
}
