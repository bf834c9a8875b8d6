package handlers

import "errors"

// ErrInvalidJSONBody is reported when a request body is present but is not JSON
var ErrInvalidJSONBody = errors.New("request body must be valid JSON")
