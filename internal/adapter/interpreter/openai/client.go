// Package openai implements the natural-language preference interpreter on the
// OpenAI chat-completions API. A failed or malformed interpretation surfaces
// as an error; the caller degrades to default preferences.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
)

// DefaultModel is used when the config names none.
const DefaultModel = "gpt-4o-mini"

// Config holds the interpreter settings.
type Config struct {
	// BaseURL is the API root, e.g. https://api.openai.com.
	BaseURL string

	// APIKey authenticates requests.
	APIKey string

	// Model selects the chat model. DefaultModel when empty.
	Model string

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// Client is the chat-completions preference interpreter. It implements
// domain.PreferenceInterpreter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     zerolog.Logger
}

// NewClient creates an interpreter client.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      model,
		logger:     logger,
	}
}

// chatRequest is the chat-completions request body.
type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat formatSpec    `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type formatSpec struct {
	Type string `json:"type"`
}

// chatResponse is the subset of the response the interpreter reads.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// preferencesPayload is the JSON shape the model is asked to produce.
type preferencesPayload struct {
	MaxStops          *int     `json:"max_stops"`
	PreferredAirlines []string `json:"preferred_airlines"`
	ExcludedAirlines  []string `json:"excluded_airlines"`
	MaxPrice          *float64 `json:"max_price"`
	MaxDurationHours  *int     `json:"max_duration_hours"`
	CabinClass        string   `json:"cabin_class"`
	SameAirlineOnly   bool     `json:"same_airline_only"`
	SortBy            string   `json:"sort_by"`
}

// InterpretPreferences implements domain.PreferenceInterpreter.
func (c *Client) InterpretPreferences(ctx context.Context, freeText string) (domain.Preferences, error) {
	content, err := c.complete(ctx, freeText)
	if err != nil {
		return domain.Preferences{}, domain.NewInterpreterError(err)
	}

	prefs, err := parsePayload(content)
	if err != nil {
		c.logger.Debug().Str("content", content).Msg("unusable interpreter output")
		return domain.Preferences{}, domain.NewInterpreterError(err)
	}

	return prefs, nil
}

// complete performs one chat-completions call and returns the message content.
func (c *Client) complete(ctx context.Context, freeText string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: freeText},
		},
		Temperature:    0,
		ResponseFormat: formatSpec{Type: "json_object"},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", fmt.Errorf("malformed completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if chat.Error != nil {
			return "", fmt.Errorf("completion failed: %s", chat.Error.Message)
		}
		return "", fmt.Errorf("completion endpoint returned %d", resp.StatusCode)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return chat.Choices[0].Message.Content, nil
}

// parsePayload converts the model's JSON answer to a validated preference set.
func parsePayload(content string) (domain.Preferences, error) {
	var payload preferencesPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &payload); err != nil {
		return domain.Preferences{}, fmt.Errorf("model output is not valid JSON: %w", err)
	}

	prefs := domain.DefaultPreferences()
	if payload.MaxStops != nil {
		prefs.MaxStops = *payload.MaxStops
	}
	prefs.PreferredAirlines = payload.PreferredAirlines
	prefs.ExcludedAirlines = payload.ExcludedAirlines
	prefs.MaxPrice = payload.MaxPrice
	prefs.MaxDurationHours = payload.MaxDurationHours
	if payload.CabinClass != "" {
		prefs.CabinClass = strings.ToUpper(payload.CabinClass)
	}
	prefs.SameAirlineOnly = payload.SameAirlineOnly
	if payload.SortBy != "" {
		prefs.SortBy = domain.ParseSortOption(payload.SortBy)
	}

	prefs.Normalize()
	if err := prefs.Validate(); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

// Ensure Client implements the interpreter contract at compile time.
var _ domain.PreferenceInterpreter = (*Client)(nil)
