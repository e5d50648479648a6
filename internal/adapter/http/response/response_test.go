package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// decodeFailure unmarshals an error envelope and asserts success is false.
func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) *ErrorDetail {
	t.Helper()
	var result Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	return result.Error
}

func TestHealth(t *testing.T) {
	c, rec := setupEcho()

	err := Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestBadRequest(t *testing.T) {
	c, rec := setupEcho()

	err := BadRequest(c, "Invalid input")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeFailure(t, rec)
	assert.Equal(t, CodeInvalidRequest, detail.Code)
	assert.Equal(t, "Invalid input", detail.Message)
}

func TestInvalidRequestBody(t *testing.T) {
	c, rec := setupEcho()

	err := InvalidRequestBody(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeFailure(t, rec)
	assert.Equal(t, CodeInvalidRequest, detail.Code)
	assert.Equal(t, MsgInvalidRequestBody, detail.Message)
}

func TestValidationError(t *testing.T) {
	c, rec := setupEcho()

	details := map[string]string{
		"origin":        "origin is required",
		"departureDate": "departureDate or departureDateRange is required",
	}
	err := ValidationError(c, details)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeFailure(t, rec)
	assert.Equal(t, CodeValidationError, detail.Code)
	assert.Equal(t, MsgValidationFailed, detail.Message)
	assert.Equal(t, "origin is required", detail.Details["origin"])
	assert.Equal(t, "departureDate or departureDateRange is required", detail.Details["departureDate"])
}

func TestValidationErrorWithMessage(t *testing.T) {
	c, rec := setupEcho()

	err := ValidationErrorWithMessage(c, "Custom validation message")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeFailure(t, rec)
	assert.Equal(t, CodeValidationError, detail.Code)
	assert.Equal(t, "Custom validation message", detail.Message)
}

func TestServiceUnavailable(t *testing.T) {
	c, rec := setupEcho()

	err := ServiceUnavailable(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	detail := decodeFailure(t, rec)
	assert.Equal(t, CodeServiceUnavailable, detail.Code)
	assert.Equal(t, MsgServiceUnavailable, detail.Message)
}

func TestGatewayTimeout(t *testing.T) {
	c, rec := setupEcho()

	err := GatewayTimeout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)

	detail := decodeFailure(t, rec)
	assert.Equal(t, CodeTimeout, detail.Code)
	assert.Equal(t, MsgTimeout, detail.Message)
}

func TestRequestCancelled(t *testing.T) {
	c, rec := setupEcho()

	err := RequestCancelled(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)

	detail := decodeFailure(t, rec)
	assert.Equal(t, CodeTimeout, detail.Code)
	assert.Equal(t, MsgRequestCancelled, detail.Message)
}

func TestInternalServerError(t *testing.T) {
	c, rec := setupEcho()

	err := InternalServerError(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	detail := decodeFailure(t, rec)
	assert.Equal(t, CodeInternalError, detail.Code)
	assert.Equal(t, MsgInternalError, detail.Message)
}

func TestSearchResults(t *testing.T) {
	c, rec := setupEcho()

	results := struct {
		Items []string `json:"items"`
		Total int      `json:"total"`
	}{
		Items: []string{"a", "b", "c"},
		Total: 3,
	}

	err := SearchResults(c, results)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Items []string `json:"items"`
			Total int      `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Data.Total)
	assert.Len(t, resp.Data.Items, 3)
}
