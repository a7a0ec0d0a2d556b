package http

import (
	"time"

	"cognitive-router/internal/model"
	"cognitive-router/internal/task"
	"cognitive-router/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Description string `json:"description" binding:"required,max=1000"`
	DueAt       string `json:"due_at"`
}

func (r createReq) validate() error {
	if r.DueAt == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, r.DueAt); err != nil {
		return errInvalidDueAt
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	input := task.CreateInput{Description: r.Description}
	if r.DueAt != "" {
		due, _ := time.Parse(time.RFC3339, r.DueAt)
		input.DueAt = &due
	}
	return input
}

// ---

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
}

func (r listReq) validate() error {
	if r.Status != "" && !model.TaskStatus(r.Status).Valid() {
		return errInvalidStatus
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return task.ListInput{
		Status: model.TaskStatus(r.Status),
		Limit:  limit,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string             `json:"id"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	DueAt       *response.DateTime `json:"due_at,omitempty"`
	CreatedAt   response.DateTime  `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   response.DateTime(t.CreatedAt),
	}
	if t.DueAt != nil {
		due := response.DateTime(*t.DueAt)
		resp.DueAt = &due
	}
	return resp
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Count: out.Count}
}
