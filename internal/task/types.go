package task

import (
	"time"

	"cognitive-router/internal/model"
)

// CreateInput is the input for creating a task. The owner comes from model.Scope.
type CreateInput struct {
	Description string
	DueAt       *time.Time
}

// ListInput filters the caller's tasks. An empty Status lists every status.
type ListInput struct {
	Status model.TaskStatus
	Limit  int
}

// ListOutput is the result of List.
type ListOutput struct {
	Tasks []model.Task
	Count int
}

// MatchInput is the free text to resolve against the caller's tasks.
type MatchInput struct {
	Text   string
	Status model.TaskStatus
	Limit  int
}

// Candidate is one ranked task record returned by Match.
type Candidate struct {
	TaskID      string
	Description string
	Score       int
}

// MatchOutput is the result of Match, best candidate first.
type MatchOutput struct {
	Candidates []Candidate
}
