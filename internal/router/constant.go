package router

// Log prefixes
const (
	LogPrefixRoute        = "internal.router.Route"
	LogPrefixClassify     = "internal.router.Classify"
	LogPrefixDisambiguate = "internal.router.Disambiguate"
)

// Router configuration
const (
	DefaultConfidenceScore = 0.9
	DefaultMatchLimit      = 5
	InteractionIDLength    = 8
)

// Payload markers
const (
	SourceOfTask           = "user_raw_input"
	DisambiguationQuestion = "I found multiple matching tasks. Which one did you mean?"
)

// Entity keys beyond the catalog slots.
const (
	EntitySourceOfTime = "source_of_time"
	EntitySourceOfTask = "source_of_task"
	EntityNewTimeISO   = "new_time_iso"
)

// Listing status values.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusAll       = "all"
)
