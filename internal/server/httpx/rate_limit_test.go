package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/filekeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_Window(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newMemoryRateLimiter(func() time.Time { return now })

	for i := 1; i <= 3; i++ {
		d := rl.Allow("k", 3, time.Minute)
		require.True(t, d.allowed, "request %d", i)
		assert.Equal(t, i, d.count)
	}
	assert.False(t, rl.Allow("k", 3, time.Minute).allowed)
	assert.True(t, rl.Allow("other", 3, time.Minute).allowed)

	now = now.Add(61 * time.Second)
	assert.True(t, rl.Allow("k", 3, time.Minute).allowed)

	rl.cleanup(now.Add(2 * time.Minute))
	assert.Empty(t, rl.entries)
}

func TestMemoryRateLimiter_NoLimit(t *testing.T) {
	rl := newMemoryRateLimiter(time.Now)
	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow("k", 0, time.Minute).allowed)
	}
}

type stubUsers struct{ calls int }

func (s *stubUsers) Register(context.Context, string, string) (*models.User, error) {
	s.calls++
	return &models.User{ID: 1}, nil
}

func (s *stubUsers) Login(context.Context, string, string) (string, error) {
	s.calls++
	return "t", nil
}

func TestRouter_RateLimitsAuthRoutes(t *testing.T) {
	users := &stubUsers{}
	r := NewRouter(Deps{Users: users, AuthRateLimit: 2})
	defer r.Close()

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"a","password":"b"}`))
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1001").Code)
	rec := send("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, 2, users.calls)

	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000").Code)
}

func TestRateLimitKeyIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:4321"
	assert.Equal(t, "ip:192.168.1.5", rateLimitKeyIP(req))

	req.RemoteAddr = ""
	assert.Equal(t, "ip:unknown", rateLimitKeyIP(req))
}

func TestNewRedisRateLimiter_Unreachable(t *testing.T) {
	_, err := NewRedisRateLimiter(context.Background(), "127.0.0.1:1", "", 0, nil)
	assert.Error(t, err)
}
