package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/dialogue/repository/memory"
	"cognitive-router/internal/dialogue/usecase"
	"cognitive-router/internal/middleware"
	"cognitive-router/internal/router/catalog"
	"cognitive-router/pkg/log"
)

func newTestRouter(t *testing.T) (*gin.Engine, dialogue.UseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc := usecase.New(log.NewNop(), memory.New(log.NewNop(), memory.Options{}), 0)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), middleware.Config{}))
	return r, uc
}

type envelope struct {
	Message string    `json:"message"`
	Data    stackResp `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, user string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
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

func TestStackEndpoints(t *testing.T) {
	r, uc := newTestRouter(t)
	ctx := context.Background()
	key := dialogue.Key{UserID: "u1", SessionID: "s1"}

	_ = uc.Push(ctx, key, dialogue.NewPendingAction(catalog.IntentTaskCreate, map[string]any{"task_name": "call mom"}))
	_ = uc.Push(ctx, key, dialogue.NewClarificationFrame(catalog.IntentTaskCancel, nil, dialogue.Clarification{
		Type:    dialogue.ClarificationTaskSelection,
		Options: []dialogue.Option{{TaskID: "t1", Description: "a"}, {TaskID: "t2", Description: "b"}},
	}))

	code, env := do(t, r, http.MethodGet, "/api/v1/dialogue/sessions/s1/frames", "u1")
	if code != http.StatusOK {
		t.Fatalf("get = %d %s", code, env.Message)
	}
	if env.Data.Depth != 2 || env.Data.Frames[1].Type != dialogue.FrameClarification {
		t.Errorf("unexpected stack %+v", env.Data)
	}

	code, env = do(t, r, http.MethodGet, "/api/v1/dialogue/sessions/s1/frames", "u2")
	if code != http.StatusOK || env.Data.Depth != 0 {
		t.Errorf("other user should see an empty stack, got %d %+v", code, env.Data)
	}

	code, _ = do(t, r, http.MethodDelete, "/api/v1/dialogue/sessions/s1/frames", "u1")
	if code != http.StatusOK {
		t.Fatalf("clear = %d", code)
	}
	frames, err := uc.Get(ctx, key)
	if err != nil || len(frames) != 0 {
		t.Errorf("stack after clear = %v, %v", frames, err)
	}
}

func TestStackEndpoints_RequireUser(t *testing.T) {
	r, _ := newTestRouter(t)

	if code, _ := do(t, r, http.MethodGet, "/api/v1/dialogue/sessions/s1/frames", ""); code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", code)
	}
}
