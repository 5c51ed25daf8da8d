package framework

import (
	"fmt"
	"time"
)

// TestResult records the outcome of one executed test. It is created by the
// runner, finalized when the test returns or panics, appended to the result
// store exactly once, and never mutated afterward.
type TestResult struct {
	Name        string
	Group       string // empty means ungrouped
	Passed      bool
	Error       string // formatted diagnostic, empty when passed
	ElapsedTime time.Duration
}

// QualifiedName returns "Group::Name" for grouped tests, or just the name.
func (r TestResult) QualifiedName() string {
	if r.Group == "" {
		return r.Name
	}
	return fmt.Sprintf("%s::%s", r.Group, r.Name)
}

// Results is the ordered collection of test results for one run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// OK reports whether no recorded test failed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TotalTime sums the elapsed time across all recorded tests.
func (r Results) TotalTime() time.Duration {
	var total time.Duration
	for _, t := range r.Tests {
		total += t.ElapsedTime
	}
	return total
}

func (r *Results) append(result TestResult) {
	r.Tests = append(r.Tests, result)
	if !result.Passed {
		r.Failures = append(r.Failures, result)
	}
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}
