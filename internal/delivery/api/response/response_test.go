package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorInfo {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	require.NotNil(t, body.Meta)

	return *body.Error
}

func TestHandleAppError_ValidationKeepsDetails(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("Title required"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	info := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", info.Code)
	assert.Equal(t, "Preencha todos os campos.", info.Message)
	assert.Equal(t, "Title required", info.Details)
}

func TestHandleAppError_AuthErrorsDropDetails(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, HandleAppError(c, domainerrors.ErrForbidden.WithDetails("owner mismatch")))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, decodeError(t, rec).Details)
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("boom")

	err := HandleAppError(c, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 0, rec.Body.Len())
}

func TestInvalidID(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, InvalidID(c, "id"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "INVALID_ID", info.Code)
	assert.Equal(t, "id", info.Details)
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"1"}`, extractData(t, rec))
}

func extractData(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return string(body.Data)
}
