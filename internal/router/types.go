package router

import (
	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/router/catalog"
)

// RouteInput is one user turn.
type RouteInput struct {
	UserID    string
	SessionID string
	Message   string
	// Timezone grounds time expressions; empty means the configured default.
	Timezone string
}

// RoutingResult is the single structured decision produced per turn.
type RoutingResult struct {
	RoutingMeta         RoutingMeta             `json:"routing_meta"`
	IntentPacket        IntentPacket            `json:"intent_packet"`
	EntitiesResolved    map[string]any          `json:"entities_resolved"`
	MemoryOperations    MemoryOperations        `json:"memory_operations"`
	ExecutionDirectives ExecutionDirectives     `json:"execution_directives"`
	Clarification       *dialogue.Clarification `json:"clarification,omitempty"`
}

type RoutingMeta struct {
	Timestamp     string `json:"timestamp"` // UTC, RFC 3339, "Z" suffix
	UserID        string `json:"user_id"`
	InteractionID string `json:"interaction_id"`
	LanguageHint  string `json:"language_hint"`
}

type IntentPacket struct {
	PrimaryIntent   catalog.Intent `json:"primary_intent"`
	IsCorrection    bool           `json:"is_correction"`
	ConfidenceScore float64        `json:"confidence_score"`
}

type MemoryOperations struct {
	Read                  []catalog.MemoryTag `json:"read"`
	Write                 []catalog.MemoryTag `json:"write"`
	VectorSearchPerformed bool                `json:"vector_search_performed"`
}

type ExecutionDirectives struct {
	RequiresConfirmation bool `json:"requires_confirmation"`
	// QueueNext holds the deferred segments of a multi-intent message, or null.
	QueueNext []string `json:"queue_next"`
	// MissingSlots is informational; it never blocks the result.
	MissingSlots []string `json:"missing_slots,omitempty"`
}
