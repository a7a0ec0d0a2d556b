package preprocess

import "context"

// Preprocessor prepares a raw utterance for routing.
type Preprocessor interface {
	Process(ctx context.Context, text string) (Output, error)
}
