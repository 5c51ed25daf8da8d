package framework

import (
	"fmt"
	"reflect"
)

// UsageError reports harness misuse, such as applying the generic equality
// assertion to pointer operands. It is deliberately a different type from
// AssertionError: the runner reports it as an unexpected failure rather than
// a failed check, so a miswritten test cannot look like a passing or
// cleanly-failing one.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// checkNotPointerType rejects operand types that must not be compared with
// the generic equality assertions. Pointer, unsafe-pointer and array
// operands compare identity or storage rather than value, which is almost
// never what an equality check means; those comparisons must go through
// AssertPtrEquals or AssertStrEquals instead.
//
// The comparable constraint on the assertion already rejects funcs, maps
// and slices at compile time; this guard covers the kinds the compiler
// cannot, and fires on first use.
func checkNotPointerType[T comparable]() {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Array:
		panic(&UsageError{Message: fmt.Sprintf(
			"AssertEquals must not be used with %s operands; use AssertStrEquals for string comparison or AssertPtrEquals for pointer comparison", t.Kind())})
	}
}
