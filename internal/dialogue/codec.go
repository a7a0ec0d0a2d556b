package dialogue

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a stack, bottom frame first.
func Encode(frames []Frame) ([]byte, error) {
	if frames == nil {
		frames = []Frame{}
	}
	return json.Marshal(frames)
}

// Decode parses a stored stack. An empty payload is an empty stack; anything
// that is not a list of typed frames is ErrCorruptStack.
func Decode(payload []byte) ([]Frame, error) {
	if len(payload) == 0 {
		return []Frame{}, nil
	}

	var frames []Frame
	if err := json.Unmarshal(payload, &frames); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStack, err)
	}
	for i, f := range frames {
		if f.Type == "" {
			return nil, fmt.Errorf("%w: frame %d has no type", ErrCorruptStack, i)
		}
	}
	if frames == nil {
		frames = []Frame{}
	}
	return frames, nil
}
