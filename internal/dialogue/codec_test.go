package dialogue_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/router/catalog"
)

func TestEncodeDecode(t *testing.T) {
	frames := []dialogue.Frame{
		dialogue.NewPendingAction(catalog.IntentTaskCreate, map[string]any{"task_name": "call mom"}),
		dialogue.NewClarificationFrame(catalog.IntentTaskCancel, map[string]any{"query": "logs"}, dialogue.Clarification{
			Type:     dialogue.ClarificationTaskSelection,
			Question: "Which one?",
			Options:  []dialogue.Option{{TaskID: "t1", Description: "Server Logs"}},
		}),
	}

	payload, err := dialogue.Encode(frames)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := dialogue.Decode(payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(frames, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantLen   int
		wantError bool
	}{
		{name: "empty payload", payload: "", wantLen: 0},
		{name: "empty list", payload: "[]", wantLen: 0},
		{name: "null", payload: "null", wantLen: 0},
		{name: "not json", payload: "{{{", wantError: true},
		{name: "object instead of list", payload: `{"type":"pending_action"}`, wantError: true},
		{name: "frame without type", payload: `[{"intent":"task_create"}]`, wantError: true},
		{name: "unknown frame type is accepted", payload: `[{"type":"confirmation"}]`, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dialogue.Decode([]byte(tt.payload))
			if tt.wantError {
				if !errors.Is(err, dialogue.ErrCorruptStack) {
					t.Fatalf("expected ErrCorruptStack, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil || len(got) != tt.wantLen {
				t.Errorf("got %v, want %d frames", got, tt.wantLen)
			}
		})
	}
}
