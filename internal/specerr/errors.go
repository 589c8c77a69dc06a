// Package specerr defines the errors raised while compiling a declaration
// script. All of them are programming errors in the script or in its caller
// and abort the compilation; no partial plan is ever returned.
package specerr

import (
	"errors"
	"fmt"
	"strings"
)

// IllegalContextError is returned when a declaration call is made without an
// active compilation session on the calling context, or when a compilation
// is started on a context that is already compiling.
type IllegalContextError struct {
	Call string
}

func (e *IllegalContextError) Error() string {
	return fmt.Sprintf("'%s' should not be invoked from outside a spec definition", e.Call)
}

// BlockAlreadyDefinedError is returned when two siblings share a description.
type BlockAlreadyDefinedError struct {
	Container   []string
	Description string
}

func (e *BlockAlreadyDefinedError) Error() string {
	if len(e.Container) == 0 {
		return fmt.Sprintf("'%s' block already defined", e.Description)
	}
	return fmt.Sprintf("'%s' block already defined in '%s'", e.Description, strings.Join(e.Container, " > "))
}

// SpecInitializationFailedError wraps a failure to evaluate the declaration
// script itself.
type SpecInitializationFailedError struct {
	Spec  string
	Cause error
}

func (e *SpecInitializationFailedError) Error() string {
	return fmt.Sprintf("failed to initialize spec '%s': %v", e.Spec, e.Cause)
}

func (e *SpecInitializationFailedError) Unwrap() error {
	return e.Cause
}

// UnbalancedGroupError is returned when group start and end calls do not
// pair up.
type UnbalancedGroupError struct {
	Op   string
	Open int
}

func (e *UnbalancedGroupError) Error() string {
	return fmt.Sprintf("unbalanced groups: %s with %d open group(s)", e.Op, e.Open)
}

// IsCompilerError reports whether err is, or wraps, one of the errors defined
// in this package.
func IsCompilerError(err error) bool {
	var (
		illegal *IllegalContextError
		dup     *BlockAlreadyDefinedError
		initErr *SpecInitializationFailedError
		unbal   *UnbalancedGroupError
	)
	return errors.As(err, &illegal) ||
		errors.As(err, &dup) ||
		errors.As(err, &initErr) ||
		errors.As(err, &unbal)
}
