// Package framework implements a minimal unit-test execution and reporting
// engine: a catalog of assertions, a runner that executes plain functions as
// tests, and a reporter that renders a grouped summary ending in a single
// SUCCESS/FAILURE verdict mapped to the process exit status.
//
// The general model is:
//
// 1. Test code calls assertion functions (AssertEquals, AssertStrContains,
// and so on). On violation an assertion panics with an *AssertionError that
// carries the diagnostic message and the call site.
//
// 2. The runner invokes each test callable, recovers any panic, classifies
// the outcome (success, assertion failure, or unexpected failure), prints an
// immediate one-line result, and appends a TestResult to the run's result
// store.
//
// 3. At the end of the run the reporter consumes the store, renders the
// grouped summary, and decides the process exit status.
//
// Execution is strictly sequential; the result store and configuration are
// per-Runner state, with a package-level default runner for the common
// single-run-per-process case.
package framework
