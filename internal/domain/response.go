package domain

// Outcome values for an assistant search.
const (
	// OutcomeSuccess means at least one flight survived the pipeline.
	OutcomeSuccess = "success"

	// OutcomeNoResults means every batch failed or no flight survived
	// filtering. Distinct from an error: the response is still structured
	// and carries a suggestion to relax constraints.
	OutcomeNoResults = "no_results"
)

// AssistantResponse is the aggregated result of one assistant search.
type AssistantResponse struct {
	// Status is OutcomeSuccess or OutcomeNoResults.
	Status string `json:"status"`

	// Suggestion carries a human-readable hint when Status is
	// OutcomeNoResults.
	Suggestion string `json:"suggestion,omitempty"`

	// Preferences echoes the preference set the pipeline actually applied
	// (after interpreter fallback and normalization).
	Preferences Preferences `json:"preferences"`

	// Combinations lists the planned date combinations in dispatch order.
	Combinations []DateCombination `json:"combinations"`

	// Flights is the final ranked, capped result set.
	Flights []NormalizedFlight `json:"flights"`

	// Analysis summarizes the result set.
	Analysis *Analysis `json:"analysis,omitempty"`

	// Metadata describes the search execution.
	Metadata SearchMetadata `json:"metadata"`
}

// SearchMetadata describes how a search executed.
type SearchMetadata struct {
	// SearchID identifies this invocation in logs.
	SearchID string `json:"search_id"`

	// CombinationsPlanned is how many date pairs the planner produced.
	CombinationsPlanned int `json:"combinations_planned"`

	// CombinationsDispatched is how many were actually searched.
	CombinationsDispatched int `json:"combinations_dispatched"`

	// CombinationsFailed counts batches whose search call failed.
	CombinationsFailed int `json:"combinations_failed"`

	// OffersSeen counts raw offers across all successful batches.
	OffersSeen int `json:"offers_seen"`

	// OffersSkipped counts raw offers dropped as structurally unusable.
	OffersSkipped int `json:"offers_skipped"`

	// OffersFiltered counts normalized flights rejected by preferences.
	OffersFiltered int `json:"offers_filtered"`

	// CacheHits counts batches served from the offer cache.
	CacheHits int `json:"cache_hits"`

	// SearchTimeMs is the total elapsed pipeline time in milliseconds.
	SearchTimeMs int64 `json:"search_time_ms"`

	// InterpreterFallback is true when free-text preference extraction
	// failed and defaults were applied.
	InterpreterFallback bool `json:"interpreter_fallback,omitempty"`
}

// Analysis summarizes an aggregated result set.
type Analysis struct {
	Price           PriceStats     `json:"price"`
	Duration        DurationStats  `json:"duration"`
	Stops           StopStats      `json:"stops"`
	Airlines        []AirlineCount `json:"airlines"`
	Recommendations []string       `json:"recommendations"`
}

// PriceStats is the price spread of a result set.
type PriceStats struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Avg      float64 `json:"avg"`
	Currency string  `json:"currency"`
}

// DurationStats is the duration spread of a result set, in hours rounded to
// one decimal place.
type DurationStats struct {
	MinHours float64 `json:"min_hours"`
	MaxHours float64 `json:"max_hours"`
	AvgHours float64 `json:"avg_hours"`
}

// StopStats is the stop-count histogram of a result set.
type StopStats struct {
	Nonstop   int `json:"nonstop"`
	OneStop   int `json:"one_stop"`
	MultiStop int `json:"multi_stop"`
}

// AirlineCount is one entry of the airline-appearance distribution.
type AirlineCount struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}
