package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"cognitive-router/internal/dialogue"
	dialogueMemory "cognitive-router/internal/dialogue/repository/memory"
	dialogueUC "cognitive-router/internal/dialogue/usecase"
	"cognitive-router/internal/model"
	"cognitive-router/internal/preprocess"
	"cognitive-router/internal/task"
	"cognitive-router/internal/temporal"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockPreprocessor passes text through untouched.
type mockPreprocessor struct {
	err error
}

func (m *mockPreprocessor) Process(ctx context.Context, text string) (preprocess.Output, error) {
	if m.err != nil {
		return preprocess.Output{}, m.err
	}
	return preprocess.Output{RawText: text, WorkingText: strings.ToLower(text), LanguageHint: "en"}, nil
}

// mockMatcher returns a fixed candidate list and records its calls.
type mockMatcher struct {
	mu         sync.Mutex
	candidates []task.Candidate
	err        error
	calls      []task.MatchInput
	scopes     []model.Scope
}

func (m *mockMatcher) Match(ctx context.Context, sc model.Scope, input task.MatchInput) (task.MatchOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, input)
	m.scopes = append(m.scopes, sc)
	if m.err != nil {
		return task.MatchOutput{}, m.err
	}
	return task.MatchOutput{Candidates: append([]task.Candidate(nil), m.candidates...)}, nil
}

// 2025-12-24T20:10:00+05:30
var testNow = time.Date(2025, 12, 24, 14, 40, 0, 0, time.UTC)

const testTimezone = "Asia/Kolkata"

func newTestUseCase(t *testing.T, matcher *mockMatcher) (*implUseCase, dialogue.UseCase) {
	t.Helper()
	if matcher == nil {
		matcher = &mockMatcher{}
	}

	resolver, err := temporal.New(testTimezone)
	if err != nil {
		t.Fatalf("temporal.New: %v", err)
	}

	stack := dialogueUC.New(&mockLogger{}, dialogueMemory.New(&mockLogger{}, dialogueMemory.Options{}), 0)
	uc := New(&mockLogger{}, &mockPreprocessor{}, matcher, stack, resolver, Options{})
	uc.now = func() time.Time { return testNow }
	uc.newID = func() string { return "0f8fad5b-d9cb-469f-a165-70867728950e" }
	return uc, stack
}

var testKey = dialogue.Key{UserID: "u1", SessionID: "s1"}
