package framework

import "os"

// defaultRunner backs the package-level functions, for the common case of
// one test run per process. The pattern follows flag.CommandLine: the
// explicit Runner API stays available for anything that needs its own
// run context (the package's own tests included).
var defaultRunner = NewRunner(os.Stdout)

// DefaultRunner returns the runner used by the package-level functions.
func DefaultRunner() *Runner { return defaultRunner }

// Prolog clears the default runner's result store and failure flag. Call it
// exactly once before any test execution.
func Prolog() { defaultRunner.Prolog() }

// Epilog renders the report and terminates the program with the run's exit
// status. Call it exactly once, after all test invocations.
func Epilog() { defaultRunner.Epilog() }

// RunTest executes a single ungrouped test on the default runner.
func RunTest(name string, test func()) { defaultRunner.RunTest(name, test) }

// RunGroupedTest executes a grouped test on the default runner.
func RunGroupedTest(group, name string, test func()) {
	defaultRunner.RunGroupedTest(group, name, test)
}

// AllowEmptyTests makes an empty run succeed.
func AllowEmptyTests() { defaultRunner.AllowEmptyTests() }

// UseASCIICheckmarks switches between [OK]/[FAIL] and symbolic markers.
func UseASCIICheckmarks(on bool) { defaultRunner.UseASCIICheckmarks(on) }

// UseUnicodeCheckmarks selects the symbolic markers.
func UseUnicodeCheckmarks() { defaultRunner.UseUnicodeCheckmarks() }

// ShowPerformance toggles timing output.
func ShowPerformance(on bool) { defaultRunner.ShowPerformance(on) }

// EnableVerboseMode announces each test name before it runs.
func EnableVerboseMode() { defaultRunner.EnableVerboseMode() }

// SetConfig replaces the default runner's configuration, e.g. with one
// loaded from a file.
func SetConfig(c Config) { defaultRunner.SetConfig(c) }
