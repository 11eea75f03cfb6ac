package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sessionProbe(captured *string) http.Handler {
	return SessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := SessionFromContext(r.Context())
		if ok {
			*captured = id
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestSessionMiddlewareAssignsID(t *testing.T) {
	var captured string
	h := sessionProbe(&captured)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, captured)
	assert.NotEmpty(t, rec.Result().Cookies(), "expected a session cookie to be set")
}

func TestSessionMiddlewareIsStablePerCookie(t *testing.T) {
	var first, second string

	rec := httptest.NewRecorder()
	sessionProbe(&first).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	sessionProbe(&second).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestSessionMiddlewareIssuesDistinctIDs(t *testing.T) {
	var first, second string

	sessionProbe(&first).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	sessionProbe(&second).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first, second)
}
