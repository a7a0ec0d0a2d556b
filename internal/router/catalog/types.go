package catalog

// Intent identifies a capability in the closed intent catalog.
type Intent string

const (
	IntentTaskCreate   Intent = "task_create"
	IntentTaskUpdate   Intent = "task_update"
	IntentTaskCancel   Intent = "task_cancel"
	IntentTaskList     Intent = "task_list"
	IntentCasualChat   Intent = "casual_chat"
	IntentRecallMemory Intent = "recall_memory"
	IntentWebSearch    Intent = "web_search"
	IntentDeepResearch Intent = "deep_research"
	IntentCorrection   Intent = "correction"
	IntentStop         Intent = "stop"
)

// MemoryTag names a downstream memory store a turn reads or writes.
type MemoryTag string

const (
	MemoryShortTermHistory MemoryTag = "short_term_history"
	MemoryTaskStore        MemoryTag = "task_store"
	MemoryVectorStore      MemoryTag = "vector_store"
	MemoryContextStack     MemoryTag = "context_stack"
)

// Slot names.
const (
	SlotTaskName   = "task_name"
	SlotTargetTime = "target_time"
	SlotTaskID     = "task_id"
	SlotNewValue   = "new_value"
	SlotStatus     = "status"
	SlotQuery      = "query"
	SlotSlotName   = "slot_name"
	SlotSlotValue  = "slot_value"
)

// Spec is the slot, memory and confirmation contract of an intent.
// MemoryRead and MemoryWrite are sets kept in a fixed order.
type Spec struct {
	RequiredSlots        []string    `json:"required_slots"`
	MemoryRead           []MemoryTag `json:"memory_read"`
	MemoryWrite          []MemoryTag `json:"memory_write"`
	RequiresConfirmation bool        `json:"requires_confirmation"`
}
