package http

import (
	"cognitive-router/internal/dialogue"
)

type stackResp struct {
	SessionID string           `json:"session_id"`
	Frames    []dialogue.Frame `json:"frames"`
	Depth     int              `json:"depth"`
}

// newStackResp lists frames bottom to top.
func (h *handler) newStackResp(key dialogue.Key, frames []dialogue.Frame) stackResp {
	if frames == nil {
		frames = []dialogue.Frame{}
	}
	return stackResp{
		SessionID: key.SessionID,
		Frames:    frames,
		Depth:     len(frames),
	}
}
