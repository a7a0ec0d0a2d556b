package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"cognitive-router/internal/middleware"
	"cognitive-router/internal/task/repository/sqlite"
	"cognitive-router/internal/task/usecase"
	"cognitive-router/pkg/log"
	pkgSqlite "cognitive-router/pkg/sqlite"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	db, err := pkgSqlite.Open(ctx, pkgSqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := sqlite.New(ctx, db, log.NewNop())
	if err != nil {
		t.Fatalf("repo: %v", err)
	}

	r := gin.New()
	h := New(log.NewNop(), usecase.New(log.NewNop(), repo))
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, user, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(middleware.HeaderUserID, user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func TestTaskLifecycle(t *testing.T) {
	r := newTestRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/tasks", "u1", `{"description":"call mom","due_at":"2025-12-25T09:00:00+05:30"}`)
	if code != http.StatusOK {
		t.Fatalf("create = %d %s", code, env.Message)
	}
	var created struct {
		Task struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"task"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	if created.Task.ID == "" || created.Task.Status != "pending" {
		t.Fatalf("unexpected created task %+v", created)
	}
	if !strings.Contains(string(env.Data), `"due_at":"2025-12-25T03:30:00Z"`) {
		t.Errorf("due_at should render in UTC: %s", env.Data)
	}

	code, env = do(t, r, http.MethodPost, "/api/v1/tasks/"+created.Task.ID+"/complete", "u1", "")
	if code != http.StatusOK {
		t.Fatalf("complete = %d %s", code, env.Message)
	}

	code, _ = do(t, r, http.MethodPost, "/api/v1/tasks/"+created.Task.ID+"/complete", "u1", "")
	if code != http.StatusConflict {
		t.Errorf("second complete = %d, want 409", code)
	}

	code, env = do(t, r, http.MethodGet, "/api/v1/tasks?status=completed", "u1", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), `"count":1`) {
		t.Errorf("list = %d %s", code, env.Data)
	}
}

func TestTaskErrors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		user   string
		body   string
		want   int
	}{
		{name: "missing user", method: http.MethodGet, path: "/api/v1/tasks", want: http.StatusUnauthorized},
		{name: "missing description", method: http.MethodPost, path: "/api/v1/tasks", user: "u1", body: `{}`, want: http.StatusBadRequest},
		{name: "bad due_at", method: http.MethodPost, path: "/api/v1/tasks", user: "u1", body: `{"description":"x","due_at":"tomorrow"}`, want: http.StatusBadRequest},
		{name: "bad status", method: http.MethodGet, path: "/api/v1/tasks?status=archived", user: "u1", want: http.StatusBadRequest},
		{name: "unknown task", method: http.MethodPost, path: "/api/v1/tasks/nope/complete", user: "u1", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, env := do(t, r, tt.method, tt.path, tt.user, tt.body); code != tt.want {
				t.Errorf("code = %d (%s), want %d", code, env.Message, tt.want)
			}
		})
	}
}
