package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, path string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(path, handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthAndLiveAlwaysOK(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(t, "/api/health", Health).Code)
	assert.Equal(t, http.StatusOK, serve(t, "/api/health/live", Live).Code)
}

func TestReadyNamesBothDependencies(t *testing.T) {
	// No store or redis is initialized in tests, so readiness must fail and
	// name both dependency checks.
	w := serve(t, "/api/health/ready", Ready)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
	assert.Equal(t, "unhealthy", resp.Checks["compound_store"])
	assert.Equal(t, "unhealthy", resp.Checks["confirm_tokens"])
}
