package framework

import (
	"fmt"
	"path/filepath"
	"runtime"
)

const unknownLocation = "unknown"

// AssertionError is the failure signal raised by every assertion in this
// package. It propagates as a panic value until the test runner recovers it;
// raising one outside of RunTest is a harness usage error and will crash the
// calling program, which is intentional.
type AssertionError struct {
	Message  string
	File     string
	Line     int
	Function string
}

// NewAssertionError creates a failure signal with no call-site information.
// File and Function are set to the "unknown" sentinel.
func NewAssertionError(message string) *AssertionError {
	return &AssertionError{
		Message:  message,
		File:     unknownLocation,
		Line:     0,
		Function: unknownLocation,
	}
}

// newAssertionErrorAt creates a failure signal whose location is the caller
// skip stack frames above this function.
func newAssertionErrorAt(message string, skip int) *AssertionError {
	e := NewAssertionError(message)
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return e
	}
	e.File = filepath.Base(file)
	e.Line = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		e.Function = fn.Name()
	}
	return e
}

func (e *AssertionError) Error() string {
	return e.Message
}

// FormattedMessage returns the message together with the captured call site,
// e.g. "Assertion failed: 5 != 6 at calc_test.go:42 in test_Addition".
func (e *AssertionError) FormattedMessage() string {
	return fmt.Sprintf("%s at %s:%d in %s", e.Message, e.File, e.Line, e.Function)
}

// failf raises an AssertionError whose location is the caller of the
// assertion function, two frames above failf itself.
func failf(format string, args ...interface{}) {
	panic(newAssertionErrorAt(fmt.Sprintf(format, args...), 3))
}
