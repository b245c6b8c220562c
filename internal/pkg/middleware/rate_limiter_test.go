package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimiter(t *testing.T, limit int) (*echo.Echo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := echo.New()
	e.POST("/otp", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, OTPVerifyRateLimiter(limit, time.Minute, client))

	return e, mr
}

func doRequest(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/otp", nil)
	req.Header.Set("X-Real-Ip", "10.0.0.1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	e, _ := setupRateLimiter(t, 3)

	for i := 0; i < 3; i++ {
		rec := doRequest(e)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	e, _ := setupRateLimiter(t, 2)

	doRequest(e)
	doRequest(e)
	rec := doRequest(e)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiter_HonorsRequestContext(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := OTPVerifyRateLimiter(1, time.Minute, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/otp", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := limiter(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, mr.Keys())
}

func TestRateLimiter_ResetsAfterPeriod(t *testing.T) {
	e, mr := setupRateLimiter(t, 1)

	rec := doRequest(e)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	mr.FastForward(2 * time.Minute)

	rec = doRequest(e)
	assert.Equal(t, http.StatusOK, rec.Code)
}
