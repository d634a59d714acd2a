package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "intern-hub.backend/internal/domain/errors"
	"intern-hub.backend/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("development")
}

func run(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/", handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSuccessEnvelope(t *testing.T) {
	w := run(func(c *gin.Context) {
		Success(c, http.StatusCreated, "Created", gin.H{"id": 1})
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Created", body["message"])
	assert.NotNil(t, body["data"])
	_, hasErrors := body["errors"]
	assert.False(t, hasErrors)
}

func TestFailWithStatusTag(t *testing.T) {
	w := run(func(c *gin.Context) {
		Fail(c, http.StatusForbidden, "Your account is pending admin approval.", gin.H{"status": "PENDING_APPROVAL"})
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "PENDING_APPROVAL", data["status"])
}

func TestErrorValidation(t *testing.T) {
	w := run(func(c *gin.Context) {
		Error(c, domainerrors.NewValidationError(map[string]string{"city": "City is required"}))
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Validation error", body["message"])
	fields := body["errors"].(map[string]interface{})
	assert.Equal(t, "City is required", fields["city"])
}

func TestErrorAppError(t *testing.T) {
	w := run(func(c *gin.Context) {
		Error(c, domainerrors.BadRequest("Invalid status filter"))
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid status filter", decode(t, w)["message"])
}

func TestErrorSentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domainerrors.ErrNotFound, http.StatusNotFound},
		{domainerrors.ErrAlreadyExists, http.StatusConflict},
		{domainerrors.ErrUnauthorized, http.StatusUnauthorized},
		{domainerrors.ErrForbidden, http.StatusForbidden},
		{domainerrors.ErrBadRequest, http.StatusBadRequest},
		{domainerrors.ErrInvalidInput, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := run(func(c *gin.Context) { Error(c, tc.err) })
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
	}
}

func TestErrorUnknownIsOpaque500(t *testing.T) {
	w := run(func(c *gin.Context) {
		Error(c, errors.New("pq: connection reset"))
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, w.Body.String(), "pq:")
}
