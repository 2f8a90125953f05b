package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Result is the uniform envelope returned by every persistence pipeline.
//
// Success is false whenever Errors is non-empty, and Payload is authoritative
// only when Success is true. Fault carries the originating error, if any, for
// diagnostics; Errors carries user-facing messages.
type Result[T any] struct {
	Success bool
	Payload T
	Errors  []string
	Fault   error
}

// OK returns a successful Result carrying payload.
func OK[T any](payload T) Result[T] {
	return Result[T]{Success: true, Payload: payload}
}

// Fail returns a failed Result carrying the given messages.
func Fail[T any](messages ...string) Result[T] {
	return Result[T]{Errors: append([]string(nil), messages...)}
}

// FromFault returns a failed Result wrapping fault. The fault message is also
// recorded in Errors so callers that only surface Errors still see it.
func FromFault[T any](fault error) Result[T] {
	r := Result[T]{Fault: fault}
	if fault != nil {
		r.Errors = []string{fault.Error()}
	}
	return r
}

// AddError records a failure message and downgrades the Result.
func (r *Result[T]) AddError(msg string) {
	r.Success = false
	r.Errors = append(r.Errors, msg)
}

// SetFault records fault, downgrades the Result, and appends its message.
// A nil fault is ignored.
func (r *Result[T]) SetFault(fault error) {
	if fault == nil {
		return
	}
	r.Success = false
	r.Fault = fault
	r.Errors = append(r.Errors, fault.Error())
}

// Absorb folds the outcome of another pipeline stage into r. Errors are
// appended in order and the most recent non-nil fault wins; the payload of r
// is left untouched.
func Absorb[T, U any](r *Result[T], other Result[U]) {
	if other.Success && len(other.Errors) == 0 {
		return
	}
	r.Success = false
	r.Errors = append(r.Errors, other.Errors...)
	if other.Fault != nil {
		r.Fault = other.Fault
	}
}

// Err converts a failed Result into a Go error. Validation-only failures wrap
// ErrValidation; failures with a fault wrap the fault. A successful Result
// returns nil.
func (r Result[T]) Err() error {
	if r.Success && len(r.Errors) == 0 {
		return nil
	}
	if r.Fault != nil {
		if len(r.Errors) > 1 {
			return fmt.Errorf("%s: %w", strings.Join(r.Errors, "; "), r.Fault)
		}
		return r.Fault
	}
	if len(r.Errors) == 0 {
		return errors.New("operation failed")
	}
	return &ValidationError{Messages: append([]string(nil), r.Errors...)}
}

// Summary renders the Result as a single log-friendly line.
func (r Result[T]) Summary() string {
	if r.Success {
		return "success"
	}
	var b strings.Builder
	b.WriteString("failed")
	if len(r.Errors) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(r.Errors, "; "))
	}
	if r.Fault != nil {
		fmt.Fprintf(&b, " (fault: %v)", r.Fault)
	}
	return b.String()
}
