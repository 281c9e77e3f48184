package errs

import "errors"

var (
	ErrInvalidEvent = errors.New("invalid loan event")
	ErrDuplicate    = errors.New("event already recorded")
)
