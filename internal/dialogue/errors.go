package dialogue

import "errors"

var (
	ErrInvalidKey       = errors.New("user_id is required")
	ErrCorruptStack     = errors.New("context stack payload is corrupt")
	ErrTooManyConflicts = errors.New("context stack write kept conflicting")
)
