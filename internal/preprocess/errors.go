package preprocess

import "errors"

var ErrInputTooLong = errors.New("input exceeds the maximum length")
