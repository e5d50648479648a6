package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
	"github.com/travel-assist/flight-search-assistant/internal/infrastructure/ratelimit"
	"github.com/travel-assist/flight-search-assistant/internal/infrastructure/retry"
	"github.com/travel-assist/flight-search-assistant/internal/infrastructure/timeutil"
)

// offersPath is the flight-offers search endpoint, relative to the base URL.
const offersPath = "/v2/shopping/flight-offers"

// Config holds the Amadeus API settings.
type Config struct {
	// BaseURL is the API root, e.g. https://test.api.amadeus.com.
	BaseURL string

	// TokenURL is the OAuth token endpoint.
	TokenURL string

	// ClientID and ClientSecret are the API credentials.
	ClientID     string
	ClientSecret string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// RateLimit guards the provider quota. Zero values use the limiter
	// defaults.
	RateLimit ratelimit.Config
}

// Client is the Amadeus flight-offers search client. It implements
// domain.OfferSearcher.
type Client struct {
	httpClient *http.Client
	tokens     *TokenCache
	limiter    *ratelimit.Limiter
	baseURL    string
	logger     zerolog.Logger
}

// offersEnvelope is the provider's response wrapper.
type offersEnvelope struct {
	Data []domain.RawOffer `json:"data"`
}

// apiError is the provider's error body.
type apiError struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// NewClient creates an Amadeus client with its own token cache.
func NewClient(cfg Config, clock timeutil.Clock, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}

	limitCfg := cfg.RateLimit
	if limitCfg.RequestsPerSecond <= 0 {
		limitCfg = ratelimit.DefaultConfig()
	}

	return &Client{
		httpClient: httpClient,
		tokens:     NewTokenCache(httpClient, clock, cfg.TokenURL, cfg.ClientID, cfg.ClientSecret),
		limiter:    ratelimit.New(limitCfg),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

// SearchOffers implements domain.OfferSearcher. One call searches one date
// combination; transient failures are retried with backoff, and an
// unauthorized response invalidates the token and retries once with a fresh
// one.
func (c *Client) SearchOffers(ctx context.Context, query domain.SearchQuery) ([]domain.RawOffer, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	offers, err := retry.DoWithResult(ctx, func() ([]domain.RawOffer, error) {
		return c.searchOnce(ctx, query)
	}, retry.ProviderConfig)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Int("offers", len(offers)).
		Msg("flight offers fetched")

	return offers, nil
}

// searchOnce performs one authenticated GET against the offers endpoint.
func (c *Client) searchOnce(ctx context.Context, query domain.SearchQuery) ([]domain.RawOffer, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+offersPath, nil)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.URL.RawQuery = buildParams(query).Encode()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var envelope offersEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, retry.NewPermanent(fmt.Errorf("malformed offers response: %w", err))
		}
		return envelope.Data, nil

	case resp.StatusCode == http.StatusUnauthorized:
		// Stale token; discard it so the retry fetches a fresh one.
		c.tokens.Invalidate()
		return nil, domain.NewRetryableSearchError(comboOf(query), resp.StatusCode,
			fmt.Errorf("provider rejected token: %s", errorDetail(body)))

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, domain.NewRetryableSearchError(comboOf(query), resp.StatusCode,
			fmt.Errorf("provider error: %s", errorDetail(body)))

	default:
		return nil, retry.NewPermanent(domain.NewSearchError(comboOf(query), resp.StatusCode,
			fmt.Errorf("provider error: %s", errorDetail(body))))
	}
}

// comboOf recovers the date combination a query was built from, for error
// attribution.
func comboOf(query domain.SearchQuery) domain.DateCombination {
	return domain.DateCombination{Departure: query.DepartureDate, Return: query.ReturnDate}
}

// buildParams maps the query onto the provider's request parameters.
func buildParams(query domain.SearchQuery) url.Values {
	params := url.Values{
		"originLocationCode":      {query.Origin},
		"destinationLocationCode": {query.Destination},
		"departureDate":           {query.DepartureDate.Format("2006-01-02")},
		"adults":                  {strconv.Itoa(query.Adults)},
		"currencyCode":            {query.CurrencyCode},
		"max":                     {strconv.Itoa(query.MaxOffers)},
	}

	if query.ReturnDate != nil {
		params.Set("returnDate", query.ReturnDate.Format("2006-01-02"))
	}
	if query.Children > 0 {
		params.Set("children", strconv.Itoa(query.Children))
	}
	if query.Infants > 0 {
		params.Set("infants", strconv.Itoa(query.Infants))
	}
	if query.CabinClass != "" {
		params.Set("travelClass", query.CabinClass)
	}
	// The provider accepts either an include or an exclude list, not both.
	if len(query.IncludedAirlines) > 0 {
		params.Set("includedAirlineCodes", strings.Join(query.IncludedAirlines, ","))
	} else if len(query.ExcludedAirlines) > 0 {
		params.Set("excludedAirlineCodes", strings.Join(query.ExcludedAirlines, ","))
	}
	if query.NonStop {
		params.Set("nonStop", "true")
	}
	if query.MaxPrice != nil {
		params.Set("maxPrice", strconv.Itoa(int(*query.MaxPrice)))
	}

	return params
}

// errorDetail extracts a human-readable message from a provider error body.
func errorDetail(body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Errors) > 0 {
		e := apiErr.Errors[0]
		if e.Detail != "" {
			return e.Detail
		}
		if e.Title != "" {
			return e.Title
		}
	}
	detail := strings.TrimSpace(string(body))
	if len(detail) > 200 {
		detail = detail[:200]
	}
	return detail
}

// Ensure Client implements the searcher contract at compile time.
var _ domain.OfferSearcher = (*Client)(nil)
