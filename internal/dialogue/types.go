package dialogue

import (
	"cognitive-router/internal/router/catalog"
)

// Key scopes a context stack to one conversation.
type Key struct {
	UserID    string
	SessionID string
}

// String renders the key for logs.
func (k Key) String() string {
	return k.UserID + "/" + k.SessionID
}

// FrameType discriminates the ContextFrame variants.
type FrameType string

const (
	FramePendingAction FrameType = "pending_action"
	FrameClarification FrameType = "clarification"
)

// ClarificationTaskSelection asks the user to pick one of several matching tasks.
const ClarificationTaskSelection = "task_selection"

// Frame is one unit of paused dialogue state. Frames have no identity beyond
// their position on the stack.
type Frame struct {
	Type          FrameType      `json:"type"`
	Intent        catalog.Intent `json:"intent,omitempty"`
	Entities      map[string]any `json:"entities,omitempty"`
	Clarification *Clarification `json:"clarification,omitempty"`
	// IsCorrection marks an intent that came from overriding a negated request.
	IsCorrection bool `json:"is_correction,omitempty"`
}

// Clarification is a question the router defers to the user instead of guessing.
type Clarification struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Option is one candidate answer of a Clarification.
type Option struct {
	TaskID      string `json:"task_id"`
	Description string `json:"description"`
}

// NewPendingAction builds a pending_action frame.
func NewPendingAction(intent catalog.Intent, entities map[string]any) Frame {
	return Frame{Type: FramePendingAction, Intent: intent, Entities: entities}
}

// NewClarificationFrame builds a clarification frame that remembers the
// interrupted intent so a later answer can resume it.
func NewClarificationFrame(intent catalog.Intent, entities map[string]any, c Clarification) Frame {
	return Frame{Type: FrameClarification, Intent: intent, Entities: entities, Clarification: &c}
}
