package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
	"github.com/travel-assist/flight-search-assistant/internal/infrastructure/cache"
)

// Default timeout values.
const (
	DefaultGlobalTimeout = 30 * time.Second
	DefaultBatchTimeout  = 10 * time.Second
)

// noResultsSuggestion is returned when nothing survived the pipeline.
const noResultsSuggestion = "No flights matched your criteria. Try relaxing airline or price filters, allowing more stops, or widening your travel dates."

// AssistantUseCase defines the interface for assisted flight searches.
type AssistantUseCase interface {
	// Search runs the full pipeline for one request: interpret preferences,
	// plan date combinations, search each combination, normalize, filter,
	// score, and aggregate into one ranked response.
	Search(ctx context.Context, req SearchRequest) (*domain.AssistantResponse, error)
}

// SearchRequest is one assistant invocation.
type SearchRequest struct {
	// Origin and Destination are IATA airport codes.
	Origin      string
	Destination string

	// Dates holds the requested departure/return dates or ranges.
	Dates domain.TravelDates

	// Passenger counts. Adults defaults to 1.
	Adults   int
	Children int
	Infants  int

	// CurrencyCode selects the pricing currency, EUR when empty.
	CurrencyCode string

	// Query is the user's free-text wishes, handed to the preference
	// interpreter when no explicit Preferences are given.
	Query string

	// Preferences, when set, are used verbatim and the interpreter is
	// skipped.
	Preferences *domain.Preferences
}

// Validate checks the request before any external call.
// Returns a wrapped ErrInvalidRequest error on failure.
func (r *SearchRequest) Validate() error {
	probe := domain.SearchQuery{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: time.Now(), // date validity is checked by Dates below
		Adults:        r.Adults,
		Children:      r.Children,
		Infants:       r.Infants,
	}
	if r.Adults == 0 {
		probe.Adults = 1
	}
	if err := probe.Validate(); err != nil {
		return err
	}
	return r.Dates.Validate()
}

// Config contains configuration options for the use case.
type Config struct {
	GlobalTimeout time.Duration
	BatchTimeout  time.Duration

	// MaxDispatched caps how many planned date combinations are actually
	// searched. Defaults to domain.MaxDispatchedCombinations.
	MaxDispatched int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout: DefaultGlobalTimeout,
		BatchTimeout:  DefaultBatchTimeout,
		MaxDispatched: domain.MaxDispatchedCombinations,
	}
}

// assistantUseCase implements AssistantUseCase with scatter-gather dispatch
// over the planned date combinations.
type assistantUseCase struct {
	searcher      domain.OfferSearcher
	interpreter   domain.PreferenceInterpreter
	offers        cache.OfferCache
	logger        zerolog.Logger
	globalTimeout time.Duration
	batchTimeout  time.Duration
	maxDispatched int
}

// NewAssistantUseCase creates a new AssistantUseCase. The interpreter may be
// nil when free-text preference extraction is not configured; cache may be nil
// to disable offer caching. If config is nil, defaults are used.
func NewAssistantUseCase(searcher domain.OfferSearcher, interpreter domain.PreferenceInterpreter, offers cache.OfferCache, logger zerolog.Logger, config *Config) AssistantUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.BatchTimeout > 0 {
			cfg.BatchTimeout = config.BatchTimeout
		}
		if config.MaxDispatched > 0 {
			cfg.MaxDispatched = config.MaxDispatched
		}
	}
	if offers == nil {
		offers = cache.NewNoOpCache()
	}

	return &assistantUseCase{
		searcher:      searcher,
		interpreter:   interpreter,
		offers:        offers,
		logger:        logger,
		globalTimeout: cfg.GlobalTimeout,
		batchTimeout:  cfg.BatchTimeout,
		maxDispatched: cfg.MaxDispatched,
	}
}

// batchOutcome holds the result of searching one date combination.
type batchOutcome struct {
	Index       int
	Combination domain.DateCombination
	Flights     []domain.NormalizedFlight
	OffersSeen  int
	Skipped     int
	Filtered    int
	CacheHit    bool
	Err         error
}

// Search implements AssistantUseCase.Search.
func (uc *assistantUseCase) Search(ctx context.Context, req SearchRequest) (*domain.AssistantResponse, error) {
	start := time.Now()
	searchID := uuid.NewString()
	log := uc.logger.With().Str("search_id", searchID).Logger()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	prefs, fallback := uc.resolvePreferences(ctx, req, log)

	combos := domain.PlanDateCombinations(req.Dates)
	if len(combos) == 0 {
		return nil, fmt.Errorf("%w: no searchable date combinations", domain.ErrInvalidRequest)
	}

	dispatch := combos
	if len(dispatch) > uc.maxDispatched {
		dispatch = dispatch[:uc.maxDispatched]
	}

	log.Info().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Int("combinations_planned", len(combos)).
		Int("combinations_dispatched", len(dispatch)).
		Msg("starting assistant search")

	batches, meta := uc.runBatches(ctx, req, prefs, dispatch, log)
	meta.SearchID = searchID
	meta.CombinationsPlanned = len(combos)
	meta.CombinationsDispatched = len(dispatch)
	meta.InterpreterFallback = fallback

	resp := &domain.AssistantResponse{
		Preferences:  prefs,
		Combinations: combos,
	}

	flights := AggregateBatches(batches, prefs.SortBy, prefs.MaxResultsTotal)
	if len(flights) == 0 {
		resp.Status = domain.OutcomeNoResults
		resp.Suggestion = noResultsSuggestion
	} else {
		resp.Status = domain.OutcomeSuccess
		resp.Flights = flights
		resp.Analysis = Analyze(flights, prefs)
	}

	meta.SearchTimeMs = time.Since(start).Milliseconds()
	resp.Metadata = meta

	log.Info().
		Str("status", resp.Status).
		Int("flights", len(resp.Flights)).
		Int64("elapsed_ms", meta.SearchTimeMs).
		Msg("assistant search finished")

	return resp, nil
}

// resolvePreferences decides which preference set governs the search:
// explicit preferences win, then the interpreter's reading of the free-text
// query, then defaults. Interpreter failure degrades to defaults and never
// blocks the search.
func (uc *assistantUseCase) resolvePreferences(ctx context.Context, req SearchRequest, log zerolog.Logger) (domain.Preferences, bool) {
	if req.Preferences != nil {
		prefs := *req.Preferences
		prefs.Normalize()
		return prefs, false
	}

	if req.Query == "" || uc.interpreter == nil {
		return domain.DefaultPreferences(), false
	}

	prefs, err := uc.interpreter.InterpretPreferences(ctx, req.Query)
	if err != nil {
		log.Warn().Err(err).Msg("preference interpretation failed, using defaults")
		return domain.DefaultPreferences(), true
	}
	prefs.Normalize()
	if err := prefs.Validate(); err != nil {
		log.Warn().Err(err).Msg("interpreter returned invalid preferences, using defaults")
		return domain.DefaultPreferences(), true
	}
	return prefs, false
}

// runBatches scatters one goroutine per dispatched combination and gathers
// the outcomes. Aggregation uses the combination index, never arrival order.
func (uc *assistantUseCase) runBatches(ctx context.Context, req SearchRequest, prefs domain.Preferences, dispatch []domain.DateCombination, log zerolog.Logger) ([]BatchResult, domain.SearchMetadata) {
	ctx, cancel := context.WithTimeout(ctx, uc.globalTimeout)
	defer cancel()

	outcomes := make(chan batchOutcome, len(dispatch))
	for i, combo := range dispatch {
		go uc.searchBatch(ctx, i, combo, req, prefs, outcomes)
	}

	var meta domain.SearchMetadata
	batches := make([]BatchResult, 0, len(dispatch))

	for range dispatch {
		outcome := <-outcomes

		meta.OffersSeen += outcome.OffersSeen
		meta.OffersSkipped += outcome.Skipped
		meta.OffersFiltered += outcome.Filtered
		if outcome.CacheHit {
			meta.CacheHits++
		}
		if outcome.Err != nil {
			meta.CombinationsFailed++
			log.Warn().
				Err(outcome.Err).
				Time("departure", outcome.Combination.Departure).
				Msg("date combination search failed")
			continue
		}

		batches = append(batches, BatchResult{
			Index:       outcome.Index,
			Combination: outcome.Combination,
			Flights:     outcome.Flights,
		})
	}

	return batches, meta
}

// searchBatch runs the per-combination pipeline: cache lookup or provider
// call, normalize, filter, score, per-batch rank and cap. Panics are
// converted into a batch failure so one bad combination cannot take down the
// whole search.
func (uc *assistantUseCase) searchBatch(ctx context.Context, index int, combo domain.DateCombination, req SearchRequest, prefs domain.Preferences, outcomes chan<- batchOutcome) {
	outcome := batchOutcome{Index: index, Combination: combo}

	defer func() {
		if r := recover(); r != nil {
			outcome.Err = fmt.Errorf("batch panic: %v", r)
			outcome.Flights = nil
		}
		outcomes <- outcome
	}()

	ctx, cancel := context.WithTimeout(ctx, uc.batchTimeout)
	defer cancel()

	query := buildQuery(req, prefs, combo)

	offers, hit := uc.offers.Get(ctx, query)
	outcome.CacheHit = hit
	if !hit {
		var err error
		offers, err = uc.searcher.SearchOffers(ctx, query)
		if err != nil {
			outcome.Err = err
			return
		}
		if err := uc.offers.Set(ctx, query, offers); err != nil {
			uc.logger.Debug().Err(err).Msg("offer cache write failed")
		}
	}

	outcome.OffersSeen = len(offers)

	flights, skipped := NormalizeBatch(offers)
	outcome.Skipped = skipped

	flights, rejected := ApplyPreferences(flights, prefs)
	outcome.Filtered = rejected

	ScoreFlights(flights, prefs)

	flights = SortFlights(flights, prefs.SortBy)
	if prefs.MaxResultsPerBatch > 0 && len(flights) > prefs.MaxResultsPerBatch {
		flights = flights[:prefs.MaxResultsPerBatch]
	}

	outcome.Flights = flights
}

// buildQuery maps the request and the resolved preferences onto one concrete
// provider query for a date combination. Airline and price constraints are
// pushed down so the provider narrows results before the pipeline sees them.
func buildQuery(req SearchRequest, prefs domain.Preferences, combo domain.DateCombination) domain.SearchQuery {
	query := domain.SearchQuery{
		Origin:           req.Origin,
		Destination:      req.Destination,
		DepartureDate:    combo.Departure,
		ReturnDate:       combo.Return,
		Adults:           req.Adults,
		Children:         req.Children,
		Infants:          req.Infants,
		CabinClass:       prefs.CabinClass,
		IncludedAirlines: prefs.PreferredAirlines,
		ExcludedAirlines: prefs.ExcludedAirlines,
		NonStop:          prefs.MaxStops == 0,
		MaxPrice:         prefs.MaxPrice,
		CurrencyCode:     req.CurrencyCode,
		MaxOffers:        maxOffersFor(prefs),
	}
	query.SetDefaults()
	return query
}

// maxOffersFor sizes the provider page so filtering still has headroom.
func maxOffersFor(prefs domain.Preferences) int {
	n := prefs.MaxResultsPerBatch * 5
	if n <= 0 {
		n = domain.DefaultMaxResultsPerBatch * 5
	}
	if n > 250 {
		n = 250
	}
	return n
}

// Ensure assistantUseCase implements AssistantUseCase at compile time.
var _ AssistantUseCase = (*assistantUseCase)(nil)
