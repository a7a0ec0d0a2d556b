package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cognitive-router/internal/router"
	"cognitive-router/internal/router/catalog"
	"cognitive-router/pkg/log"
)

type stubRouter struct{}

func (stubRouter) Route(ctx context.Context, input router.RouteInput) (router.RoutingResult, error) {
	return router.RoutingResult{
		RoutingMeta:  router.RoutingMeta{UserID: input.UserID},
		IntentPacket: router.IntentPacket{PrimaryIntent: catalog.IntentCasualChat},
	}, nil
}

func newTestServer(t *testing.T, checks ...func() error) *HTTPServer {
	t.Helper()
	srv, err := New(Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		RouterUC:    stubRouter{},
		ReadyChecks: checks,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		if w := serve(srv, http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Errorf("%s = %d", path, w.Code)
		}
	}
}

func TestReadyCheckFailure(t *testing.T) {
	srv := newTestServer(t, func() error { return errors.New("database is gone") })

	if w := serve(srv, http.MethodGet, "/ready", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("/ready = %d, want 503", w.Code)
	}
}

func TestRouteIsMounted(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, http.MethodPost, "/api/v1/router/route", `{"user_id":"u1","message":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("route = %d %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"primary_intent":"casual_chat"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("request id header should be set")
	}

	if w := serve(srv, http.MethodGet, "/api/v1/tasks", ""); w.Code != http.StatusNotFound {
		t.Errorf("task routes should be absent without a task use case, got %d", w.Code)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{Logger: log.NewNop(), Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected an error without a router use case")
	}
	if _, err := New(Config{Logger: log.NewNop(), Mode: gin.TestMode, RouterUC: stubRouter{}}); err == nil {
		t.Error("expected an error without a port")
	}
}
