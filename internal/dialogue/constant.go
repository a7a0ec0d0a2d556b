package dialogue

const (
	// MaxWriteAttempts bounds the read-modify-write retries of one stack operation.
	MaxWriteAttempts = 5
	// DefaultMaxFrames is used when no frame limit is configured.
	DefaultMaxFrames = 16
)
