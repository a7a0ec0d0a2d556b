// Package catalog is the static registry mapping intents to their contracts.
package catalog

var table = map[Intent]Spec{
	IntentTaskCreate: {
		RequiredSlots:        []string{SlotTaskName, SlotTargetTime},
		MemoryRead:           []MemoryTag{MemoryShortTermHistory},
		MemoryWrite:          []MemoryTag{MemoryTaskStore},
		RequiresConfirmation: true,
	},
	IntentTaskUpdate: {
		RequiredSlots:        []string{SlotTaskID, SlotNewValue},
		MemoryRead:           []MemoryTag{MemoryShortTermHistory, MemoryTaskStore},
		MemoryWrite:          []MemoryTag{MemoryTaskStore},
		RequiresConfirmation: true,
	},
	IntentTaskCancel: {
		RequiredSlots:        []string{SlotTaskID},
		MemoryRead:           []MemoryTag{MemoryShortTermHistory, MemoryTaskStore},
		MemoryWrite:          []MemoryTag{MemoryTaskStore},
		RequiresConfirmation: true,
	},
	IntentTaskList: {
		RequiredSlots: []string{SlotStatus},
	},
	IntentCasualChat: {},
	IntentRecallMemory: {
		RequiredSlots: []string{SlotQuery},
		MemoryRead:    []MemoryTag{MemoryVectorStore},
	},
	IntentWebSearch: {
		RequiredSlots: []string{SlotQuery},
	},
	IntentDeepResearch: {
		RequiredSlots:        []string{SlotQuery},
		MemoryRead:           []MemoryTag{MemoryVectorStore},
		RequiresConfirmation: true,
	},
	IntentCorrection: {
		RequiredSlots: []string{SlotSlotName, SlotSlotValue},
		MemoryRead:    []MemoryTag{MemoryContextStack},
		MemoryWrite:   []MemoryTag{MemoryContextStack},
	},
	IntentStop: {
		MemoryRead:  []MemoryTag{MemoryContextStack},
		MemoryWrite: []MemoryTag{MemoryContextStack},
	},
}

// Lookup returns the contract for intent. Unknown intents get DefaultSpec.
// The returned Spec is a copy; mutating it does not affect later lookups.
func Lookup(intent Intent) Spec {
	spec, ok := table[intent]
	if !ok {
		return DefaultSpec()
	}
	return Spec{
		RequiredSlots:        append([]string{}, spec.RequiredSlots...),
		MemoryRead:           append([]MemoryTag{}, spec.MemoryRead...),
		MemoryWrite:          append([]MemoryTag{}, spec.MemoryWrite...),
		RequiresConfirmation: spec.RequiresConfirmation,
	}
}

// DefaultSpec is the contract of an unknown intent: no slots, no memory, no confirmation.
func DefaultSpec() Spec {
	return Spec{
		RequiredSlots: []string{},
		MemoryRead:    []MemoryTag{},
		MemoryWrite:   []MemoryTag{},
	}
}

// Known reports whether intent is in the catalog.
func (i Intent) Known() bool {
	_, ok := table[i]
	return ok
}

// UsesVectorSearch reports whether routing intent implies a vector-store search.
func (i Intent) UsesVectorSearch() bool {
	return i == IntentRecallMemory || i == IntentDeepResearch
}

// Mutating reports whether intent changes an existing task record.
func (i Intent) Mutating() bool {
	return i == IntentTaskUpdate || i == IntentTaskCancel
}
