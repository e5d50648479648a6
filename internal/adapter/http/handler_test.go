package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
	"github.com/travel-assist/flight-search-assistant/internal/usecase"
)

// mockUseCase is a func-based AssistantUseCase for handler tests.
type mockUseCase struct {
	searchFunc func(ctx context.Context, req usecase.SearchRequest) (*domain.AssistantResponse, error)
}

func (m *mockUseCase) Search(ctx context.Context, req usecase.SearchRequest) (*domain.AssistantResponse, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, req)
	}
	return &domain.AssistantResponse{
		Status:      domain.OutcomeSuccess,
		Preferences: domain.DefaultPreferences(),
		Metadata:    domain.SearchMetadata{SearchID: "test-search"},
	}, nil
}

// setupTestHandler creates a test Echo instance with routes registered.
func setupTestHandler(uc usecase.AssistantUseCase) *echo.Echo {
	e := echo.New()
	h := NewAssistantHandler(uc)
	RegisterRoutes(e, h)
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeEnvelope parses the standard response envelope.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const searchPath = "/api/v1/assistant/search"

// =====================================================
// Handler Tests
// =====================================================

func TestSearch_Success(t *testing.T) {
	var captured usecase.SearchRequest
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, req usecase.SearchRequest) (*domain.AssistantResponse, error) {
			captured = req
			return &domain.AssistantResponse{
				Status:      domain.OutcomeSuccess,
				Preferences: domain.DefaultPreferences(),
				Flights: []domain.NormalizedFlight{
					{
						ID:                   "offer-1",
						Price:                domain.PriceInfo{Currency: "EUR", Total: 450, Base: 400},
						TotalDurationMinutes: 450,
						AirlinesUsed:         domain.NewAirlineSet("BA"),
						IsSingleAirline:      true,
						ConvenienceScore:     87.5,
					},
				},
				Metadata: domain.SearchMetadata{SearchID: "search-1", CombinationsDispatched: 1},
			}, nil
		},
	}
	e := setupTestHandler(mock)

	rec := makeRequest(e, http.MethodPost, searchPath, map[string]interface{}{
		"origin":        "jfk",
		"destination":   "LHR",
		"departureDate": "2026-06-10",
		"query":         "nonstop please",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "success", data["status"])

	flights, ok := data["flights"].([]interface{})
	require.True(t, ok)
	require.Len(t, flights, 1)
	flight := flights[0].(map[string]interface{})
	assert.Equal(t, "offer-1", flight["id"])
	assert.Equal(t, "7h 30m", flight["duration_formatted"])

	// The handler normalizes and converts before calling the use case.
	assert.Equal(t, "JFK", captured.Origin)
	assert.Equal(t, "LHR", captured.Destination)
	assert.Equal(t, 1, captured.Adults, "unspecified adults defaults to 1")
	assert.Equal(t, "nonstop please", captured.Query)
	require.NotNil(t, captured.Dates.DepartureDate)
	assert.Equal(t, "2026-06-10", captured.Dates.DepartureDate.Format("2006-01-02"))
	assert.Nil(t, captured.Preferences)
}

func TestSearch_ExplicitPreferencesConverted(t *testing.T) {
	var captured usecase.SearchRequest
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, req usecase.SearchRequest) (*domain.AssistantResponse, error) {
			captured = req
			return &domain.AssistantResponse{Status: domain.OutcomeSuccess}, nil
		},
	}
	e := setupTestHandler(mock)

	maxStops := 0
	rec := makeRequest(e, http.MethodPost, searchPath, map[string]interface{}{
		"origin":      "JFK",
		"destination": "LHR",
		"departureDateRange": map[string]string{
			"start": "2026-06-10",
			"end":   "2026-06-19",
		},
		"preferences": map[string]interface{}{
			"maxStops":          maxStops,
			"preferredAirlines": []string{"ek"},
			"sortBy":            "price",
		},
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, captured.Preferences)
	assert.Equal(t, 0, captured.Preferences.MaxStops)
	assert.Equal(t, []string{"EK"}, captured.Preferences.PreferredAirlines)
	assert.Equal(t, domain.SortByPrice, captured.Preferences.SortBy)
	require.NotNil(t, captured.Dates.DepartureRange)
	assert.Equal(t, "2026-06-19", captured.Dates.DepartureRange.End.Format("2006-01-02"))
}

func TestSearch_NoResultsPassthrough(t *testing.T) {
	mock := &mockUseCase{
		searchFunc: func(ctx context.Context, req usecase.SearchRequest) (*domain.AssistantResponse, error) {
			return &domain.AssistantResponse{
				Status:      domain.OutcomeNoResults,
				Suggestion:  "No flights matched your criteria. Try relaxing airline or price filters, allowing more stops, or widening your travel dates.",
				Preferences: domain.DefaultPreferences(),
			}, nil
		},
	}
	e := setupTestHandler(mock)

	rec := makeRequest(e, http.MethodPost, searchPath, validRequest())

	// A search with zero surviving flights is still HTTP 200.
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "no_results", data["status"])
	assert.NotEmpty(t, data["suggestion"])
}

func TestSearch_MalformedBody(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, searchPath, bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "invalid_request", errObj["code"])
}

func TestSearch_ValidationErrorDetails(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodPost, searchPath, map[string]interface{}{
		"origin": "X",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "validation_error", errObj["code"])

	details, ok := errObj["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "origin")
	assert.Contains(t, details, "destination")
	assert.Contains(t, details, "departureDate")
}

func TestSearch_ErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		errorCode    string
	}{
		{
			name:         "domain invalid request",
			err:          fmt.Errorf("%w: no searchable date combinations", domain.ErrInvalidRequest),
			expectedCode: http.StatusBadRequest,
			errorCode:    "validation_error",
		},
		{
			name:         "deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: http.StatusGatewayTimeout,
			errorCode:    "timeout",
		},
		{
			name:         "context cancelled",
			err:          context.Canceled,
			expectedCode: http.StatusGatewayTimeout,
			errorCode:    "timeout",
		},
		{
			name: "provider search error",
			err: domain.NewSearchError(domain.DateCombination{}, http.StatusBadGateway,
				errors.New("provider unreachable")),
			expectedCode: http.StatusServiceUnavailable,
			errorCode:    "service_unavailable",
		},
		{
			name:         "unknown error",
			err:          errors.New("boom"),
			expectedCode: http.StatusInternalServerError,
			errorCode:    "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockUseCase{
				searchFunc: func(ctx context.Context, req usecase.SearchRequest) (*domain.AssistantResponse, error) {
					return nil, tt.err
				},
			}
			e := setupTestHandler(mock)

			rec := makeRequest(e, http.MethodPost, searchPath, validRequest())

			assert.Equal(t, tt.expectedCode, rec.Code)

			body := decodeEnvelope(t, rec)
			assert.Equal(t, false, body["success"])
			errObj := body["error"].(map[string]interface{})
			assert.Equal(t, tt.errorCode, errObj["code"])
		})
	}
}

func TestHealth(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
