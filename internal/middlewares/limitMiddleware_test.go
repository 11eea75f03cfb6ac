package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetVisitors() {
	mu.Lock()
	defer mu.Unlock()
	ipVisitors = make(map[string]*visitor)
	sessionVisitors = make(map[string]*visitor)
}

// sessionLimitedChain mirrors the router's middleware order: session
// resolution first, then the rate limiter.
func sessionLimitedChain(captured *string) http.Handler {
	return SessionMiddleware(RateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := SessionFromContext(r.Context()); ok {
			*captured = id
		}
		w.WriteHeader(http.StatusOK)
	})))
}

func TestRateLimitKeysOnSession(t *testing.T) {
	resetVisitors()
	var session string
	h := sessionLimitedChain(&session)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, session)

	mu.Lock()
	_, keyed := sessionVisitors[session]
	ips := len(ipVisitors)
	mu.Unlock()

	assert.True(t, keyed, "expected a limiter keyed on the device session")
	assert.Zero(t, ips)
}

func TestRateLimitReusesSessionLimiterAcrossRequests(t *testing.T) {
	resetVisitors()
	var session string
	h := sessionLimitedChain(&session)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, sessionVisitors, 1)
}

func TestRateLimitThrottlesBurstFromOneSession(t *testing.T) {
	resetVisitors()
	var session string
	h := sessionLimitedChain(&session)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rec.Result().Cookies()

	var code int
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		code = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, code)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, sessionVisitors, 1, "a throttled burst should stay on one limiter")
}

func TestRateLimitFallsBackToIPWithoutSession(t *testing.T) {
	resetVisitors()
	h := RateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, sessionVisitors)
	assert.Len(t, ipVisitors, 1)
}
