package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cognitive-router/pkg/log"
)

func newTestEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/ping", append(handlers, func(c *gin.Context) { c.String(http.StatusOK, "pong") })...)
	return r
}

func TestRequestID(t *testing.T) {
	r := newTestEngine(New(log.NewNop(), Config{}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "req-42" {
		t.Errorf("echoed request id = %q", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if got := w.Header().Get(HeaderRequestID); len(got) != 36 {
		t.Errorf("minted request id = %q, want a uuid", got)
	}
}

func TestRequestIDReachesContext(t *testing.T) {
	var got any
	r := newTestEngine(New(log.NewNop(), Config{}), func(c *gin.Context) {
		got = c.Request.Context().Value(log.RequestIDKey)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-7")
	r.ServeHTTP(httptest.NewRecorder(), req)
	if got != "req-7" {
		t.Errorf("context request id = %v", got)
	}
}

func TestRateLimitPerClient(t *testing.T) {
	// 10/min gives a burst of one request.
	r := newTestEngine(New(log.NewNop(), Config{RequestsPerMin: 10}))

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderUserID, user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("alice"); code != http.StatusOK {
		t.Fatalf("first request = %d", code)
	}
	if code := do("alice"); code != http.StatusTooManyRequests {
		t.Errorf("second request = %d, want 429", code)
	}
	if code := do("bob"); code != http.StatusOK {
		t.Errorf("other client = %d, want 200", code)
	}
}

func TestScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), Config{})
	r := gin.New()
	r.GET("/me", mw.Scope(), func(c *gin.Context) {
		sc, _ := GetScope(c)
		c.String(http.StatusOK, sc.UserID)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing header = %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(HeaderUserID, "u1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "u1" {
		t.Errorf("got %d %q", w.Code, w.Body.String())
	}
}
