package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	metrics, err := NewMetricsMiddleware("marketplace")
	require.NoError(t, err)

	e := echo.New()
	e.Use(metrics.Handle)
	e.GET("/api/v1/services/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrServiceNotFound
		}

		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", metrics.Handler())

	for _, id := range []string{"a", "b", "missing"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/services/"+id, nil))
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `marketplace_http_requests_total{method="GET",path="/api/v1/services/:id",status="200"} 2`)
	assert.Contains(t, body, `marketplace_http_requests_total{method="GET",path="/api/v1/services/:id",status="404"} 1`)
	assert.Contains(t, body, "marketplace_http_request_duration_seconds_bucket")
}
