package repository

// Snapshot is a stored stack payload at a given version.
type Snapshot struct {
	Payload []byte
	Version int64 // 0 means the key does not exist
}

// ReplaceStackOptions holds the parameters for a versioned stack write.
type ReplaceStackOptions struct {
	Payload         []byte
	ExpectedVersion int64
}
