package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRequest(e *echo.Echo, handler echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	e := echo.New()
	handler := RateLimiter()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < burstSize; i++ {
		rec := rateLimitedRequest(e, handler, "10.0.0.1")
		assert.Equal(t, http.StatusOK, rec.Code, fmt.Sprintf("request %d should pass", i+1))
	}
}

func TestRateLimiter_BlocksBeyondBurst(t *testing.T) {
	e := echo.New()
	handler := RateLimiter()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	var lastCode int
	for i := 0; i < burstSize+5; i++ {
		rec := rateLimitedRequest(e, handler, "10.0.0.2")
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	e := echo.New()
	handler := RateLimiter()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Exhaust one IP's budget
	for i := 0; i < burstSize+5; i++ {
		rateLimitedRequest(e, handler, "10.0.0.3")
	}

	// A different IP is unaffected
	rec := rateLimitedRequest(e, handler, "10.0.0.4")
	assert.Equal(t, http.StatusOK, rec.Code)
}
