package runner

import (
	"fmt"
	"time"
)

// PanicError is the failure of an example whose code panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// MissingFailureError is the failure of an example that was expected to fail
// but did not.
type MissingFailureError struct {
	Expected error
}

func (e *MissingFailureError) Error() string {
	return fmt.Sprintf("expected to fail with '%v' but passed", e.Expected)
}

// UnexpectedFailureError is the failure of an example that failed with
// something other than what it expected.
type UnexpectedFailureError struct {
	Expected error
	Actual   error
}

func (e *UnexpectedFailureError) Error() string {
	return fmt.Sprintf("expected to fail with '%v' but failed with '%v'", e.Expected, e.Actual)
}

func (e *UnexpectedFailureError) Unwrap() error {
	return e.Actual
}

// TimeoutError is the failure of an example that ran out of time.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s", e.Timeout)
}
