package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrProtected is returned when a row cannot be deleted because other rows reference it.
	ErrProtected = errors.New("object is referenced and cannot be deleted")
)

const (
	MsgRequired        = "This field is required."
	MsgDoesNotExist    = "Object with identifier=%s does not exist."
	MsgInvalidPK       = "Invalid pk \"%d\" - object does not exist."
	MsgInvalidChoice   = "\"%v\" is not a valid choice."
	MsgVisitorInactive = "Visitor with identifier=%s is not active."
	MsgCopyUnavailable = "Book copy with identifier=%s is not available."
	MsgDueDateTooSoon  = "Due date must be at least 1 day ahead."
	MsgAlreadyReturned = "That book copy has already been returned."
	MsgAlreadyExists   = "%s with this %s already exists."
)

// FieldErrors collects messages keyed by request field. It renders as
// {"field": ["message", ...]}.
type FieldErrors struct {
	Fields   map[string][]string
	notFound bool
}

func NewFieldErrors() *FieldErrors {
	return &FieldErrors{Fields: make(map[string][]string)}
}

func (e *FieldErrors) Add(field, msg string) *FieldErrors {
	e.Fields[field] = append(e.Fields[field], msg)
	return e
}

func (e *FieldErrors) Required(field string) *FieldErrors {
	return e.Add(field, MsgRequired)
}

func (e *FieldErrors) NotFound(field, identifier string) *FieldErrors {
	e.notFound = true
	return e.Add(field, fmt.Sprintf(MsgDoesNotExist, identifier))
}

func (e *FieldErrors) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

func (e *FieldErrors) Empty() bool {
	return len(e.Fields) == 0
}

// Err returns nil when nothing was collected.
func (e *FieldErrors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *FieldErrors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *FieldErrors) Is(target error) bool {
	switch target {
	case ErrValidation:
		return true
	case ErrNotFound:
		return e.notFound
	}
	return false
}

// ConstraintError is a storage constraint violation translated from the driver error.
type ConstraintError struct {
	Code       string
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint %q violated (%s): %v", e.Constraint, e.Code, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// Constraint returns the violated constraint name, if err carries one.
func Constraint(err error) (string, bool) {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint, true
	}
	return "", false
}
