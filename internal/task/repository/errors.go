package repository

import "errors"

var (
	ErrNotFound     = errors.New("task record not found")
	ErrFailedToSave = errors.New("failed to save task record")
	ErrFailedToList = errors.New("failed to list task records")
)
