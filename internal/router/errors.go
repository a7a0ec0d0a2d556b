package router

import "errors"

var ErrMissingUserID = errors.New("user_id is required")
