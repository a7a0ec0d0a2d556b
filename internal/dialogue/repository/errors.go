package repository

import "errors"

var (
	ErrVersionConflict = errors.New("context stack version conflict")
	ErrFailedToGet     = errors.New("failed to get context stack")
	ErrFailedToReplace = errors.New("failed to replace context stack")
)
