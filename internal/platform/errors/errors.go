package apperrors

import "errors"

var (
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrNoActiveSession     = errors.New("no active fast")
	ErrActiveSessionExists = errors.New("a fast is already active")
	ErrNotFound            = errors.New("record not found")
	ErrMalformedImport     = errors.New("malformed import payload")
)
