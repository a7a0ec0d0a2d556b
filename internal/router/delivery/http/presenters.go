package http

import (
	"cognitive-router/internal/router"
)

type routeReq struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Timezone  string `json:"timezone"`
}

func (r routeReq) toInput() router.RouteInput {
	return router.RouteInput{
		UserID:    r.UserID,
		SessionID: r.SessionID,
		Message:   r.Message,
		Timezone:  r.Timezone,
	}
}
