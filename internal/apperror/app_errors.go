package apperror

import "errors"

var (
	ErrStepOutOfRange  = errors.New("step out of range")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownAction   = errors.New("unknown action")
)
