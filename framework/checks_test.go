package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertTrue(t *testing.T) {
	AssertTrue(true)
	AssertTrue(1 < 2, "should never fire")

	e := expectAssertionError(t, func() { AssertTrue(false) })
	assert.Equal(t, "condition is false", e.Message)

	e = expectAssertionError(t, func() { AssertTrue(false, "must hold") })
	assert.Equal(t, "assertion failed, 'must hold'", e.Message)

	e = expectAssertionError(t, func() { AssertTrue(false, "value was %d", 7) })
	assert.Equal(t, "assertion failed, 'value was 7'", e.Message)
}

func TestAssertFalse(t *testing.T) {
	AssertFalse(false)

	e := expectAssertionError(t, func() { AssertFalse(true) })
	assert.Equal(t, "condition is true", e.Message)

	e = expectAssertionError(t, func() { AssertFalse(true, "must not hold") })
	assert.Equal(t, "assertion failed, 'must not hold'", e.Message)
}

func TestAssertEquals(t *testing.T) {
	AssertEquals(5, 5)
	AssertEquals("a", "a")

	e := expectAssertionError(t, func() { AssertEquals(5, 6) })
	assert.Equal(t, "Assertion failed: 5 != 6", e.Message)
	assert.Contains(t, e.Message, "5")
	assert.Contains(t, e.Message, "6")

	e = expectAssertionError(t, func() { AssertEquals(5, 6, "mismatch") })
	assert.Equal(t, "Assertion failed, 'mismatch': 5 != 6", e.Message)
}

func TestAssertNotEquals(t *testing.T) {
	AssertNotEquals(1, 2)

	e := expectAssertionError(t, func() { AssertNotEquals(1, 1) })
	assert.Equal(t, "Assertion failed: 1 == 1", e.Message)
}

func TestEqualsRejectsPointerOperands(t *testing.T) {
	a, b := 1, 1
	e := expectUsageError(t, func() { AssertEquals(&a, &b) })
	assert.Contains(t, e.Error(), "AssertPtrEquals")

	e = expectUsageError(t, func() { AssertNotEquals(&a, &b) })
	assert.Contains(t, e.Error(), "AssertPtrEquals")
}

func TestEqualsRejectsArrayOperands(t *testing.T) {
	x := [2]int{1, 2}
	e := expectUsageError(t, func() { AssertEquals(x, x) })
	assert.Contains(t, e.Error(), "must not be used")
}

func TestGuardFiresBeforePredicate(t *testing.T) {
	// even an equal pair of pointers must trip the guard, not pass
	a := 1
	expectUsageError(t, func() { AssertEquals(&a, &a) })
}

func TestAssertPtrEquals(t *testing.T) {
	value := 42
	p := &value
	AssertPtrEquals(p, p)

	var nilPtr *int
	AssertPtrEquals(nilPtr, nil)

	other := 42
	e := expectAssertionError(t, func() { AssertPtrEquals(p, &other) })
	assert.Contains(t, e.Message, "Pointer assertion failed: ")
	assert.Contains(t, e.Message, "!=")

	e = expectAssertionError(t, func() { AssertPtrEquals(p, &other, "same object expected") })
	assert.Contains(t, e.Message, "Pointer assertion failed, 'same object expected': ")
}

func TestAssertPtrNotEquals(t *testing.T) {
	a, b := 1, 2
	AssertPtrNotEquals(&a, &b)

	p := &a
	e := expectAssertionError(t, func() { AssertPtrNotEquals(p, p) })
	assert.Contains(t, e.Message, "Pointer assertion failed: ")
	assert.Contains(t, e.Message, "==")
}

func TestAssertNullAndNotNull(t *testing.T) {
	var p *int
	AssertNull(p)

	value := 1
	AssertNotNull(&value)

	e := expectAssertionError(t, func() { AssertNull(&value) })
	assert.Contains(t, e.Message, "pointer is not null")

	e = expectAssertionError(t, func() { AssertNotNull(p) })
	assert.Contains(t, e.Message, "pointer is null")

	e = expectAssertionError(t, func() { AssertNotNull(p, "lookup result") })
	assert.Equal(t, "Assertion failed, 'lookup result': pointer is null", e.Message)
}

func TestAssertStrEquals(t *testing.T) {
	AssertStrEquals("hello", "hello")
	AssertStrEquals([]byte("hello"), "hello")
	AssertStrEquals([]rune("héllo"), "h?llo")
	AssertStrEquals(42, "42")

	e := expectAssertionError(t, func() { AssertStrEquals("hello", "world") })
	assert.Equal(t, `String assertion failed: "hello" != "world"`, e.Message)
	assert.Contains(t, e.Message, "hello")
	assert.Contains(t, e.Message, "world")

	e = expectAssertionError(t, func() { AssertStrEquals("a", "b", "labels differ") })
	assert.Equal(t, `String assertion failed, 'labels differ': "a" != "b"`, e.Message)
}

func TestAssertStrNotEquals(t *testing.T) {
	AssertStrNotEquals("hello", "world")

	e := expectAssertionError(t, func() { AssertStrNotEquals("same", "same") })
	assert.Equal(t, `String assertion failed: "same" == "same"`, e.Message)
}

func TestAssertStrContains(t *testing.T) {
	AssertStrContains("hello world", "world")
	AssertStrContains("hello world", "") // empty needle is always contained
	AssertStrContains(errors.New("connection refused"), "refused")

	e := expectAssertionError(t, func() { AssertStrContains("", "x") })
	assert.Equal(t, `String assertion failed: "" does not contain "x"`, e.Message)

	e = expectAssertionError(t, func() { AssertStrContains("abc", "xyz", "marker missing") })
	assert.Equal(t, `String assertion failed, 'marker missing': "abc" does not contain "xyz"`, e.Message)
}

func TestAssertStrNotContains(t *testing.T) {
	AssertStrNotContains("success message", "error")

	e := expectAssertionError(t, func() { AssertStrNotContains("an error occurred", "error") })
	assert.Equal(t, `String assertion failed: "an error occurred" contains "error"`, e.Message)
}

func TestOrderingAssertions(t *testing.T) {
	AssertGt(5, 3)
	AssertGte(3, 3)
	AssertLt(3, 5)
	AssertLte(3, 3)
	AssertGt("b", "a")
	AssertLt(1.5, 2.5)

	e := expectAssertionError(t, func() { AssertGt(3, 5) })
	assert.Equal(t, "Assertion failed: 3 is not greater than 5", e.Message)

	e = expectAssertionError(t, func() { AssertGte(3, 5) })
	assert.Equal(t, "Assertion failed: 3 is not greater than or equal to 5", e.Message)

	e = expectAssertionError(t, func() { AssertLt(5, 3) })
	assert.Equal(t, "Assertion failed: 5 is not less than 3", e.Message)

	e = expectAssertionError(t, func() { AssertLte(5, 3) })
	assert.Equal(t, "Assertion failed: 5 is not less than or equal to 3", e.Message)

	e = expectAssertionError(t, func() { AssertGt(3, 5, "threshold") })
	assert.Equal(t, "Assertion failed, 'threshold': 3 is not greater than 5", e.Message)
}

func TestAssertThrows(t *testing.T) {
	AssertThrows(func() { panic("boom") })
	AssertThrows(func() { panic(errors.New("bad state")) })

	// an assertion failure inside the callable counts as a throw and is
	// swallowed, not re-raised
	AssertThrows(func() { AssertTrue(false) })

	e := expectAssertionError(t, func() {
		AssertThrows(func() {})
	})
	assert.Equal(t, "Expected exception was not thrown", e.Message)

	e = expectAssertionError(t, func() {
		AssertThrows(func() {}, "divide by zero")
	})
	assert.Equal(t, "Expected exception was not thrown: divide by zero", e.Message)
}

func TestAssertDoesNotThrow(t *testing.T) {
	AssertDoesNotThrow(func() {})

	e := expectAssertionError(t, func() {
		AssertDoesNotThrow(func() { panic("boom") })
	})
	assert.Equal(t, "Unexpected exception thrown: boom", e.Message)

	e = expectAssertionError(t, func() {
		AssertDoesNotThrow(func() { panic(errors.New("disk full")) })
	})
	assert.Equal(t, "Unexpected exception thrown: disk full", e.Message)

	e = expectAssertionError(t, func() {
		AssertDoesNotThrow(func() { panic("boom") }, "during setup")
	})
	assert.Equal(t, "Unexpected exception thrown: during setup - boom", e.Message)

	e = expectAssertionError(t, func() {
		AssertDoesNotThrow(func() { panic("") })
	})
	assert.Equal(t, "Unexpected unknown exception thrown", e.Message)
}

func TestDidPanic(t *testing.T) {
	panicked, recovered := didPanic(func() { panic("x") })
	assert.True(t, panicked)
	assert.Equal(t, "x", recovered)

	panicked, recovered = didPanic(func() {})
	assert.False(t, panicked)
	assert.Nil(t, recovered)
}
