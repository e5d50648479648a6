// Package integration contains tests that exercise the assistant pipeline
// end to end: HTTP handlers, the use case, and mock collaborators wired
// together the way the server wires them.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/travel-assist/flight-search-assistant/internal/adapter/http"
	"github.com/travel-assist/flight-search-assistant/internal/domain"
	"github.com/travel-assist/flight-search-assistant/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.AssistantHandler
}

// NewTestServer creates a test server with the given use case and the same
// route layout as the real server.
func NewTestServer(uc usecase.AssistantUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewAssistantHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts the given body to the assistant search endpoint.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/assistant/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// Envelope mirrors the response envelope every endpoint except /health uses.
type Envelope struct {
	Success bool                   `json:"success"`
	Data    json.RawMessage        `json:"data"`
	Error   map[string]interface{} `json:"error"`
}

// ParseEnvelope parses the response body as the standard envelope.
func (r *Response) ParseEnvelope() (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin             string                 `json:"origin"`
	Destination        string                 `json:"destination"`
	DepartureDate      string                 `json:"departureDate,omitempty"`
	DepartureDateRange map[string]string      `json:"departureDateRange,omitempty"`
	ReturnDate         string                 `json:"returnDate,omitempty"`
	Adults             int                    `json:"adults,omitempty"`
	CurrencyCode       string                 `json:"currencyCode,omitempty"`
	Query              string                 `json:"query,omitempty"`
	Preferences        map[string]interface{} `json:"preferences,omitempty"`
}

// DefaultSearchRequest returns a valid one-way search request body.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-06-10",
		Adults:        1,
	}
}

// CreateUseCase wires a use case with the given collaborators and default
// configuration. Pass nil for the interpreter to run without free-text
// interpretation, as the server does when no interpreter is configured.
func CreateUseCase(searcher domain.OfferSearcher, interpreter domain.PreferenceInterpreter) usecase.AssistantUseCase {
	return usecase.NewAssistantUseCase(searcher, interpreter, nil, zerolog.Nop(), nil)
}

// CreateUseCaseWithConfig wires a use case with custom configuration.
func CreateUseCaseWithConfig(searcher domain.OfferSearcher, interpreter domain.PreferenceInterpreter, config *usecase.Config) usecase.AssistantUseCase {
	return usecase.NewAssistantUseCase(searcher, interpreter, nil, zerolog.Nop(), config)
}
