package http

import (
	"fmt"
	"time"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
)

// AssistantResponseDTO is the data transfer object for assistant search
// responses. It matches the expected API output format with snake_case fields.
type AssistantResponseDTO struct {
	Status       string               `json:"status"`
	Suggestion   string               `json:"suggestion,omitempty"`
	Preferences  PreferencesOutDTO    `json:"preferences"`
	Combinations []DateCombinationDTO `json:"combinations"`
	Flights      []FlightDTO          `json:"flights"`
	Analysis     *AnalysisDTO         `json:"analysis,omitempty"`
	Metadata     MetadataDTO          `json:"metadata"`
}

// PreferencesOutDTO echoes the preference set the pipeline applied.
type PreferencesOutDTO struct {
	MaxStops           int      `json:"max_stops"`
	PreferredAirlines  []string `json:"preferred_airlines,omitempty"`
	ExcludedAirlines   []string `json:"excluded_airlines,omitempty"`
	MaxPrice           *float64 `json:"max_price,omitempty"`
	MaxDurationHours   *int     `json:"max_duration_hours,omitempty"`
	CabinClass         string   `json:"cabin_class"`
	SameAirlineOnly    bool     `json:"same_airline_only"`
	SortBy             string   `json:"sort_by"`
	MaxResultsPerBatch int      `json:"max_results_per_batch"`
	MaxResultsTotal    int      `json:"max_results_total"`
}

// DateCombinationDTO is one searched (departure, return) date pair.
type DateCombinationDTO struct {
	Departure string `json:"departure"`
	Return    string `json:"return,omitempty"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	SearchID               string `json:"search_id"`
	CombinationsPlanned    int    `json:"combinations_planned"`
	CombinationsDispatched int    `json:"combinations_dispatched"`
	CombinationsFailed     int    `json:"combinations_failed"`
	OffersSeen             int    `json:"offers_seen"`
	OffersSkipped          int    `json:"offers_skipped"`
	OffersFiltered         int    `json:"offers_filtered"`
	CacheHits              int    `json:"cache_hits"`
	SearchTimeMs           int64  `json:"search_time_ms"`
	InterpreterFallback    bool   `json:"interpreter_fallback,omitempty"`
}

// FlightDTO is the data transfer object for one ranked flight.
type FlightDTO struct {
	ID                   string              `json:"id"`
	Price                PriceDTO            `json:"price"`
	Itineraries          []ItineraryDTO      `json:"itineraries"`
	TotalDurationMinutes int                 `json:"total_duration_minutes"`
	DurationFormatted    string              `json:"duration_formatted"`
	TotalStops           int                 `json:"total_stops"`
	Airlines             []string            `json:"airlines"`
	IsSingleAirline      bool                `json:"is_single_airline"`
	ValidatingAirlines   []string            `json:"validating_airlines,omitempty"`
	ConvenienceScore     float64             `json:"convenience_score"`
	Dates                *DateCombinationDTO `json:"dates,omitempty"`
}

// PriceDTO represents price information.
type PriceDTO struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
	Base     float64 `json:"base"`
}

// ItineraryDTO represents one directional journey.
type ItineraryDTO struct {
	DurationMinutes   int          `json:"duration_minutes"`
	DurationFormatted string       `json:"duration_formatted"`
	Stops             int          `json:"stops"`
	Segments          []SegmentDTO `json:"segments"`
	Airlines          []string     `json:"airlines"`
}

// SegmentDTO represents one takeoff-to-landing flight.
type SegmentDTO struct {
	Departure        SegmentPointDTO `json:"departure"`
	Arrival          SegmentPointDTO `json:"arrival"`
	Carrier          string          `json:"carrier"`
	FlightNumber     string          `json:"flight_number"`
	OperatingCarrier string          `json:"operating_carrier,omitempty"`
	Aircraft         string          `json:"aircraft,omitempty"`
	DurationMinutes  int             `json:"duration_minutes"`
}

// SegmentPointDTO represents a departure or arrival point.
type SegmentPointDTO struct {
	Airport  string `json:"airport"`
	Terminal string `json:"terminal,omitempty"`
	Time     string `json:"time,omitempty"`
}

// AnalysisDTO summarizes the result set.
type AnalysisDTO struct {
	Price           PriceStatsDTO    `json:"price"`
	Duration        DurationStatsDTO `json:"duration"`
	Stops           StopStatsDTO     `json:"stops"`
	Airlines        []AirlineCountDTO `json:"airlines"`
	Recommendations []string         `json:"recommendations"`
}

// PriceStatsDTO is the price spread of a result set.
type PriceStatsDTO struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Avg      float64 `json:"avg"`
	Currency string  `json:"currency"`
}

// DurationStatsDTO is the duration spread of a result set, in hours.
type DurationStatsDTO struct {
	MinHours float64 `json:"min_hours"`
	MaxHours float64 `json:"max_hours"`
	AvgHours float64 `json:"avg_hours"`
}

// StopStatsDTO is the stop-count histogram of a result set.
type StopStatsDTO struct {
	Nonstop   int `json:"nonstop"`
	OneStop   int `json:"one_stop"`
	MultiStop int `json:"multi_stop"`
}

// AirlineCountDTO is one entry of the airline distribution.
type AirlineCountDTO struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// ToAssistantResponseDTO converts a domain AssistantResponse to its DTO.
func ToAssistantResponseDTO(resp *domain.AssistantResponse) *AssistantResponseDTO {
	if resp == nil {
		return nil
	}

	dto := &AssistantResponseDTO{
		Status:       resp.Status,
		Suggestion:   resp.Suggestion,
		Preferences:  toPreferencesOutDTO(resp.Preferences),
		Combinations: make([]DateCombinationDTO, len(resp.Combinations)),
		Flights:      make([]FlightDTO, len(resp.Flights)),
		Analysis:     toAnalysisDTO(resp.Analysis),
		Metadata: MetadataDTO{
			SearchID:               resp.Metadata.SearchID,
			CombinationsPlanned:    resp.Metadata.CombinationsPlanned,
			CombinationsDispatched: resp.Metadata.CombinationsDispatched,
			CombinationsFailed:     resp.Metadata.CombinationsFailed,
			OffersSeen:             resp.Metadata.OffersSeen,
			OffersSkipped:          resp.Metadata.OffersSkipped,
			OffersFiltered:         resp.Metadata.OffersFiltered,
			CacheHits:              resp.Metadata.CacheHits,
			SearchTimeMs:           resp.Metadata.SearchTimeMs,
			InterpreterFallback:    resp.Metadata.InterpreterFallback,
		},
	}

	for i, combo := range resp.Combinations {
		dto.Combinations[i] = toDateCombinationDTO(combo)
	}
	for i, flight := range resp.Flights {
		dto.Flights[i] = ToFlightDTO(&flight)
	}

	return dto
}

// ToFlightDTO converts a domain NormalizedFlight to a FlightDTO.
func ToFlightDTO(flight *domain.NormalizedFlight) FlightDTO {
	dto := FlightDTO{
		ID: flight.ID,
		Price: PriceDTO{
			Currency: flight.Price.Currency,
			Total:    flight.Price.Total,
			Base:     flight.Price.Base,
		},
		Itineraries:          make([]ItineraryDTO, len(flight.Itineraries)),
		TotalDurationMinutes: flight.TotalDurationMinutes,
		DurationFormatted:    formatMinutes(flight.TotalDurationMinutes),
		TotalStops:           flight.TotalStops,
		Airlines:             flight.AirlinesUsed.Codes(),
		IsSingleAirline:      flight.IsSingleAirline,
		ValidatingAirlines:   flight.ValidatingAirlines,
		ConvenienceScore:     flight.ConvenienceScore,
	}

	for i, itin := range flight.Itineraries {
		dto.Itineraries[i] = toItineraryDTO(itin)
	}

	if flight.DateCombination != nil {
		combo := toDateCombinationDTO(*flight.DateCombination)
		dto.Dates = &combo
	}

	return dto
}

func toItineraryDTO(itin domain.Itinerary) ItineraryDTO {
	dto := ItineraryDTO{
		DurationMinutes:   itin.DurationMinutes,
		DurationFormatted: formatMinutes(itin.DurationMinutes),
		Stops:             itin.Stops,
		Segments:          make([]SegmentDTO, len(itin.Segments)),
		Airlines:          itin.Airlines.Codes(),
	}
	for i, seg := range itin.Segments {
		dto.Segments[i] = SegmentDTO{
			Departure:        toSegmentPointDTO(seg.Departure),
			Arrival:          toSegmentPointDTO(seg.Arrival),
			Carrier:          seg.CarrierCode,
			FlightNumber:     seg.FlightNumber,
			OperatingCarrier: seg.OperatingCarrier,
			Aircraft:         seg.Aircraft,
			DurationMinutes:  seg.DurationMinutes,
		}
	}
	return dto
}

func toSegmentPointDTO(p domain.SegmentPoint) SegmentPointDTO {
	dto := SegmentPointDTO{
		Airport:  p.Airport,
		Terminal: p.Terminal,
	}
	// Unparsable provider timestamps are zero; omit them from the output.
	if !p.Time.IsZero() {
		dto.Time = p.Time.Format(time.RFC3339)
	}
	return dto
}

func toPreferencesOutDTO(p domain.Preferences) PreferencesOutDTO {
	return PreferencesOutDTO{
		MaxStops:           p.MaxStops,
		PreferredAirlines:  p.PreferredAirlines,
		ExcludedAirlines:   p.ExcludedAirlines,
		MaxPrice:           p.MaxPrice,
		MaxDurationHours:   p.MaxDurationHours,
		CabinClass:         p.CabinClass,
		SameAirlineOnly:    p.SameAirlineOnly,
		SortBy:             string(p.SortBy),
		MaxResultsPerBatch: p.MaxResultsPerBatch,
		MaxResultsTotal:    p.MaxResultsTotal,
	}
}

func toDateCombinationDTO(combo domain.DateCombination) DateCombinationDTO {
	dto := DateCombinationDTO{
		Departure: combo.Departure.Format("2006-01-02"),
	}
	if combo.Return != nil {
		dto.Return = combo.Return.Format("2006-01-02")
	}
	return dto
}

func toAnalysisDTO(a *domain.Analysis) *AnalysisDTO {
	if a == nil {
		return nil
	}

	dto := &AnalysisDTO{
		Price: PriceStatsDTO{
			Min:      a.Price.Min,
			Max:      a.Price.Max,
			Avg:      a.Price.Avg,
			Currency: a.Price.Currency,
		},
		Duration: DurationStatsDTO{
			MinHours: a.Duration.MinHours,
			MaxHours: a.Duration.MaxHours,
			AvgHours: a.Duration.AvgHours,
		},
		Stops: StopStatsDTO{
			Nonstop:   a.Stops.Nonstop,
			OneStop:   a.Stops.OneStop,
			MultiStop: a.Stops.MultiStop,
		},
		Airlines:        make([]AirlineCountDTO, len(a.Airlines)),
		Recommendations: a.Recommendations,
	}
	for i, count := range a.Airlines {
		dto.Airlines[i] = AirlineCountDTO{Code: count.Code, Count: count.Count}
	}
	return dto
}

// formatMinutes renders a minute count as "7h 30m".
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
