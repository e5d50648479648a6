// Package amadeus implements the flight-offers search provider against the
// Amadeus Self-Service API: OAuth2 client-credentials auth with a cached
// bearer token, rate limiting, and retry with backoff.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/travel-assist/flight-search-assistant/internal/infrastructure/retry"
	"github.com/travel-assist/flight-search-assistant/internal/infrastructure/timeutil"
)

// tokenExpiryMargin is subtracted from the advertised token lifetime so a
// token is refreshed before it can expire mid-request.
const tokenExpiryMargin = 30 * time.Second

// tokenResponse is the OAuth token endpoint's answer.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	State       string `json:"state"`
}

// TokenCache holds one bearer token for the Amadeus API and refreshes it on
// expiry. Safe for concurrent use; concurrent refreshes are serialized.
type TokenCache struct {
	httpClient *http.Client
	clock      timeutil.Clock
	tokenURL   string
	clientID   string
	secret     string

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenCache creates a TokenCache for the given OAuth endpoint and
// credentials.
func NewTokenCache(httpClient *http.Client, clock timeutil.Clock, tokenURL, clientID, secret string) *TokenCache {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &TokenCache{
		httpClient: httpClient,
		clock:      clock,
		tokenURL:   tokenURL,
		clientID:   clientID,
		secret:     secret,
	}
}

// Token returns a valid bearer token, refreshing it when the cached one is
// missing or inside the expiry margin.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.clock.Now().Before(c.expiresAt) {
		return c.token, nil
	}

	token, expiresIn, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = c.clock.Now().Add(time.Duration(expiresIn) * time.Second).Add(-tokenExpiryMargin)
	return c.token, nil
}

// Invalidate discards the cached token so the next Token call refreshes.
// Called after the API rejects a request as unauthorized.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.expiresAt = time.Time{}
}

// fetch performs the client-credentials grant.
func (c *TokenCache) fetch(ctx context.Context) (string, int, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.secret},
	}

	resp, err := retry.DoWithResult(ctx, func() (tokenResponse, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
		if err != nil {
			return tokenResponse{}, retry.NewPermanent(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		httpResp, err := c.httpClient.Do(req)
		if err != nil {
			return tokenResponse{}, err
		}
		defer httpResp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
		if err != nil {
			return tokenResponse{}, err
		}

		if httpResp.StatusCode != http.StatusOK {
			err := fmt.Errorf("token endpoint returned %d: %s", httpResp.StatusCode, strings.TrimSpace(string(body)))
			if httpResp.StatusCode >= 400 && httpResp.StatusCode < 500 && httpResp.StatusCode != http.StatusTooManyRequests {
				return tokenResponse{}, retry.NewPermanent(err)
			}
			return tokenResponse{}, err
		}

		var tr tokenResponse
		if err := json.Unmarshal(body, &tr); err != nil {
			return tokenResponse{}, retry.NewPermanent(fmt.Errorf("malformed token response: %w", err))
		}
		if tr.AccessToken == "" {
			return tokenResponse{}, retry.NewPermanent(fmt.Errorf("token response has no access_token"))
		}
		return tr, nil
	}, retry.TokenConfig)
	if err != nil {
		return "", 0, fmt.Errorf("oauth token request failed: %w", err)
	}

	return resp.AccessToken, resp.ExpiresIn, nil
}
