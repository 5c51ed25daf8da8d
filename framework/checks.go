package framework

import (
	"cmp"
	"fmt"
	"strings"
)

// The assertions in this file signal failure by panicking with an
// *AssertionError carrying the call site; the test runner recovers it and
// records the outcome. On success they have no observable effect.
//
// Every assertion accepts optional trailing msgAndArgs, interpolated into
// the diagnostic the same way testify does: a lone string is used as-is,
// a format string plus arguments goes through fmt.Sprintf.

func userMessage(msgAndArgs []interface{}) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return fmt.Sprint(msgAndArgs...)
	}
}

// AssertTrue fails unless condition is true.
func AssertTrue(condition bool, msgAndArgs ...interface{}) {
	if condition {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("assertion failed, '%s'", msg)
	}
	failf("condition is false")
}

// AssertFalse fails unless condition is false.
func AssertFalse(condition bool, msgAndArgs ...interface{}) {
	if !condition {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("assertion failed, '%s'", msg)
	}
	failf("condition is true")
}

// AssertEquals fails unless x == y. It must not be used with pointer or
// array operands; use AssertPtrEquals for address comparison or
// AssertStrEquals for text comparison.
func AssertEquals[T comparable](x, y T, msgAndArgs ...interface{}) {
	checkNotPointerType[T]()
	if x == y {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("Assertion failed, '%s': %s != %s", msg, Stringify(x), Stringify(y))
	}
	failf("Assertion failed: %s != %s", Stringify(x), Stringify(y))
}

// AssertNotEquals fails unless x != y. Pointer and array operands are
// rejected the same way as in AssertEquals.
func AssertNotEquals[T comparable](x, y T, msgAndArgs ...interface{}) {
	checkNotPointerType[T]()
	if x != y {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("Assertion failed, '%s': %s == %s", msg, Stringify(x), Stringify(y))
	}
	failf("Assertion failed: %s == %s", Stringify(x), Stringify(y))
}

// AssertPtrEquals fails unless the two pointers hold the same address.
// Non-pointer operands are rejected by the compiler; a nil literal is
// accepted.
func AssertPtrEquals[T any](p1, p2 *T, msgAndArgs ...interface{}) {
	if p1 == p2 {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("Pointer assertion failed, '%s': %p != %p", msg, p1, p2)
	}
	failf("Pointer assertion failed: %p != %p", p1, p2)
}

// AssertPtrNotEquals fails unless the two pointers hold different addresses.
func AssertPtrNotEquals[T any](p1, p2 *T, msgAndArgs ...interface{}) {
	if p1 != p2 {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("Pointer assertion failed, '%s': %p == %p", msg, p1, p2)
	}
	failf("Pointer assertion failed: %p == %p", p1, p2)
}

// AssertNull fails unless the pointer is nil.
func AssertNull[T any](ptr *T, msgAndArgs ...interface{}) {
	if ptr == nil {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("Assertion failed, '%s': pointer is not null: %p", msg, ptr)
	}
	failf("Assertion failed, pointer is not null: %p", ptr)
}

// AssertNotNull fails unless the pointer is non-nil.
func AssertNotNull[T any](ptr *T, msgAndArgs ...interface{}) {
	if ptr != nil {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("Assertion failed, '%s': pointer is null", msg)
	}
	failf("Assertion failed, pointer is null")
}

// AssertStrEquals fails unless the two operands are textually equal after
// coercion. Operands may be native strings, byte or rune slices, Stringers,
// errors, or any stringifiable value; wide input is transliterated to ASCII.
func AssertStrEquals(x, y interface{}, msgAndArgs ...interface{}) {
	xs, ys := coerceToText(x), coerceToText(y)
	if xs == ys {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("String assertion failed, '%s': %q != %q", msg, xs, ys)
	}
	failf("String assertion failed: %q != %q", xs, ys)
}

// AssertStrNotEquals fails unless the two operands differ textually after
// coercion.
func AssertStrNotEquals(x, y interface{}, msgAndArgs ...interface{}) {
	xs, ys := coerceToText(x), coerceToText(y)
	if xs != ys {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("String assertion failed, '%s': %q == %q", msg, xs, ys)
	}
	failf("String assertion failed: %q == %q", xs, ys)
}

// AssertStrContains fails unless str contains substr after coercing both
// operands to text. An empty substring is always contained.
func AssertStrContains(str, substr interface{}, msgAndArgs ...interface{}) {
	s, sub := coerceToText(str), coerceToText(substr)
	if strings.Contains(s, sub) {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("String assertion failed, '%s': %q does not contain %q", msg, s, sub)
	}
	failf("String assertion failed: %q does not contain %q", s, sub)
}

// AssertStrNotContains fails if str contains substr after coercing both
// operands to text.
func AssertStrNotContains(str, substr interface{}, msgAndArgs ...interface{}) {
	s, sub := coerceToText(str), coerceToText(substr)
	if !strings.Contains(s, sub) {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("String assertion failed, '%s': %q contains %q", msg, s, sub)
	}
	failf("String assertion failed: %q contains %q", s, sub)
}

// AssertGt fails unless x > y.
func AssertGt[T cmp.Ordered](x, y T, msgAndArgs ...interface{}) {
	if x > y {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("Assertion failed, '%s': %s is not greater than %s", msg, Stringify(x), Stringify(y))
	}
	failf("Assertion failed: %s is not greater than %s", Stringify(x), Stringify(y))
}

// AssertGte fails unless x >= y.
func AssertGte[T cmp.Ordered](x, y T, msgAndArgs ...interface{}) {
	if x >= y {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("Assertion failed, '%s': %s is not greater than or equal to %s", msg, Stringify(x), Stringify(y))
	}
	failf("Assertion failed: %s is not greater than or equal to %s", Stringify(x), Stringify(y))
}

// AssertLt fails unless x < y.
func AssertLt[T cmp.Ordered](x, y T, msgAndArgs ...interface{}) {
	if x < y {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("Assertion failed, '%s': %s is not less than %s", msg, Stringify(x), Stringify(y))
	}
	failf("Assertion failed: %s is not less than %s", Stringify(x), Stringify(y))
}

// AssertLte fails unless x <= y.
func AssertLte[T cmp.Ordered](x, y T, msgAndArgs ...interface{}) {
	if x <= y {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("Assertion failed, '%s': %s is not less than or equal to %s", msg, Stringify(x), Stringify(y))
	}
	failf("Assertion failed: %s is not less than or equal to %s", Stringify(x), Stringify(y))
}

// AssertThrows fails unless invoking f panics. The recovered value is
// observed only to decide the outcome; it is swallowed, not re-raised.
func AssertThrows(f func(), msgAndArgs ...interface{}) {
	panicked, _ := didPanic(f)
	if panicked {
		return
	}
	if msg := userMessage(msgAndArgs); msg != "" {
		failf("Expected exception was not thrown: %s", msg)
	}
	failf("Expected exception was not thrown")
}

// AssertDoesNotThrow fails if invoking f panics, embedding the recovered
// value's message in the diagnostic.
func AssertDoesNotThrow(f func(), msgAndArgs ...interface{}) {
	panicked, recovered := didPanic(f)
	if !panicked {
		return
	}
	what := panicMessage(recovered)
	msg := userMessage(msgAndArgs)
	switch {
	case what == "" && msg != "":
		failf("Unexpected unknown exception thrown: %s", msg)
	case what == "":
		failf("Unexpected unknown exception thrown")
	case msg != "":
		failf("Unexpected exception thrown: %s - %s", msg, what)
	default:
		failf("Unexpected exception thrown: %s", what)
	}
}

// didPanic invokes f, reporting whether it panicked and with what value.
func didPanic(f func()) (panicked bool, recovered interface{}) {
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
				recovered = r
			}
		}()
		f()
	}()
	return
}

// panicMessage extracts a human-readable message from a recovered panic
// value, or "" when it carries none.
func panicMessage(recovered interface{}) string {
	switch v := recovered.(type) {
	case nil:
		return ""
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
