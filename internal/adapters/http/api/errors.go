package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrInternal = errors.New("internal server error")
	ErrPanic    = errors.New("handler panicked")
)

// Public error details. msgInternal is the only body ever sent for a 5xx.
const (
	msgInternal         = "Internal server error."
	msgNotFound         = "Not Found"
	msgMethodNotAllowed = "Method Not Allowed"
)
