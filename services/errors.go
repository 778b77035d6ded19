package services

import "errors"

// Domain failures the handlers translate into HTTP statuses. Validation
// errors are raised before any write; store errors pass through untouched
// and surface to the client as a generic retryable failure.
var (
	ErrAlreadyLinked = errors.New("student is already on this teacher's roster")
	ErrNotEligible   = errors.New("rating requires at least one lesson with this teacher")
	ErrInvalidScore  = errors.New("score must be between 1 and 5")
	ErrPastDateTime  = errors.New("appointment time must be in the future")
	ErrNotFound      = errors.New("record not found")
)
