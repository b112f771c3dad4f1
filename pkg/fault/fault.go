package fault

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindInternal
)

// Fault carries a classified error across the service boundary so that
// handlers can translate it into an HTTP status without string matching.
type Fault struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Fault) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.kindString(), e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.kindString(), e.Message)
}

// Unwrap allows errors.Is and errors.As to work.
func (e *Fault) Unwrap() error {
	return e.Err
}

func (e *Fault) kindString() string {
	switch e.Kind {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFoundError"
	case KindConflict:
		return "ConflictError"
	case KindInternal:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// Validation reports malformed input rejected before it reaches persistence.
func Validation(msg string, args ...any) error {
	return &Fault{Kind: KindValidation, Message: fmt.Sprintf(msg, args...)}
}

// NotFound reports a missing form, question or rule target.
func NotFound(msg string, args ...any) error {
	return &Fault{Kind: KindNotFound, Message: fmt.Sprintf(msg, args...)}
}

// Conflict reports a mutation that the resource's current state forbids,
// such as editing the structure of a published form.
func Conflict(msg string, args ...any) error {
	return &Fault{Kind: KindConflict, Message: fmt.Sprintf(msg, args...)}
}

// Internal wraps an unexpected downstream failure.
func Internal(msg string, err error) error {
	return &Fault{Kind: KindInternal, Message: msg, Err: err}
}

func Is(err error, kind Kind) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind == kind
	}
	return false
}

func IsValidation(err error) bool { return Is(err, KindValidation) }
func IsNotFound(err error) bool   { return Is(err, KindNotFound) }
func IsConflict(err error) bool   { return Is(err, KindConflict) }
