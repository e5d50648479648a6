// Package http provides the HTTP handler layer for the flight search
// assistant. It handles request parsing, validation, response formatting, and
// error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/travel-assist/flight-search-assistant/internal/adapter/http/response"
	"github.com/travel-assist/flight-search-assistant/internal/domain"
	"github.com/travel-assist/flight-search-assistant/internal/usecase"
)

// AssistantHandler handles HTTP requests for the assistant endpoints.
type AssistantHandler struct {
	useCase usecase.AssistantUseCase
}

// NewAssistantHandler creates a new AssistantHandler with the given use case.
func NewAssistantHandler(uc usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		useCase: uc,
	}
}

// Search handles POST /api/v1/assistant/search
//
// @Summary Assisted flight search
// @Description Searches flight offers over one or more candidate travel dates, applies preferences (explicit or interpreted from free text), and returns a ranked, analyzed result set
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body SearchAssistantRequest true "Search request"
// @Success 200 {object} AssistantResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/assistant/search [post]
func (h *AssistantHandler) Search(c echo.Context) error {
	var req SearchAssistantRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToSearchRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToAssistantResponseDTO(result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *AssistantHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses. Provider and
// interpreter failures are normally absorbed inside the pipeline (a search
// with zero surviving flights is a structured no-results response, not an
// error), so most of what reaches this point is request validation or a
// timeout on the caller's context.
func (h *AssistantHandler) handleError(c echo.Context, err error) error {
	var searchErr *domain.SearchError
	if errors.As(err, &searchErr) {
		return response.ServiceUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *AssistantHandler) Health(c echo.Context) error {
	return response.Health(c)
}
