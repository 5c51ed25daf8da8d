package framework

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// Runner executes test callables one at a time, in the exact order they are
// invoked, and accumulates their results. It is not safe for concurrent use;
// the execution model is strictly sequential.
type Runner struct {
	out         io.Writer
	debugLogger Logger
	config      Config
	results     Results
	failed      bool
}

// NewRunner creates a Runner writing its output to out. A nil writer means
// os.Stdout.
func NewRunner(out io.Writer) *Runner {
	if out == nil {
		out = os.Stdout
	}
	return &Runner{
		out:         out,
		debugLogger: NullLogger(),
		config:      DefaultConfig(),
	}
}

// SetDebugLogger directs the runner's lifecycle debug output to the given
// logger. A nil logger restores the default of discarding it.
func (r *Runner) SetDebugLogger(logger Logger) {
	if logger == nil {
		logger = NullLogger()
	}
	r.debugLogger = logger
}

// Config returns the current run configuration.
func (r *Runner) Config() Config { return r.config }

// SetConfig replaces the run configuration. Changes take effect at the next
// decision point: the reporter reads the configuration at render time, not
// at test-execution time.
func (r *Runner) SetConfig(c Config) { r.config = c }

// AllowEmptyTests makes a run with zero executed tests succeed.
func (r *Runner) AllowEmptyTests() { r.config.AllowEmptyTests = true }

// UseASCIICheckmarks switches between [OK]/[FAIL] and symbolic markers.
func (r *Runner) UseASCIICheckmarks(on bool) { r.config.ASCIICheckmarks = on }

// UseUnicodeCheckmarks selects the symbolic markers.
func (r *Runner) UseUnicodeCheckmarks() { r.config.ASCIICheckmarks = false }

// ShowPerformance toggles per-test and aggregate timing output.
func (r *Runner) ShowPerformance(on bool) { r.config.ShowPerformance = on }

// EnableVerboseMode announces each test name before it runs.
func (r *Runner) EnableVerboseMode() { r.config.Verbose = true }

// Prolog starts a fresh run: it empties the result store and resets the
// failure flag. Results accumulated before the most recent Prolog are gone.
func (r *Runner) Prolog() {
	r.results = Results{}
	r.failed = false
}

// Results returns the result store accumulated since the last Prolog.
func (r *Runner) Results() Results { return r.results }

// Failed reports whether any test has failed since the last Prolog.
func (r *Runner) Failed() bool { return r.failed }

// RunTest executes a single ungrouped test.
func (r *Runner) RunTest(name string, test func()) {
	r.runTest("", name, test)
}

// RunGroupedTest executes a test under a group label; tests sharing a group
// are reported together in the summary.
func (r *Runner) RunGroupedTest(group, name string, test func()) {
	r.runTest(group, name, test)
}

func (r *Runner) runTest(group, name string, test func()) {
	result := TestResult{Name: name, Group: group, Passed: true}
	qualified := result.QualifiedName()

	if r.config.Verbose {
		fmt.Fprintf(r.out, "Running test: %s\n", qualified)
	}
	r.debugLogger.Printf("test started: %s", qualified)

	start := time.Now()
	failure, unexpected := invoke(test)
	result.ElapsedTime = time.Since(start)

	timing := ""
	if r.config.ShowPerformance {
		timing = fmt.Sprintf(" (%s)", formatMillis(result.ElapsedTime))
	}

	switch {
	case failure != nil:
		result.Passed = false
		result.Error = failure.FormattedMessage()
		fmt.Fprintf(r.out, "%s Test [%s] failed!, error: %s%s\n",
			markFail(r.config), qualified, result.Error, timing)
	case unexpected != "":
		result.Passed = false
		result.Error = unexpected
		fmt.Fprintf(r.out, "%s Test [%s] failed with unexpected exception!, error: %s%s\n",
			markFail(r.config), qualified, result.Error, timing)
	default:
		fmt.Fprintf(r.out, "%s Test [%s] succeeded%s\n",
			markSuccess(r.config), qualified, timing)
	}

	if !result.Passed {
		r.failed = true
	}
	r.results.append(result)
	r.debugLogger.Printf("test finished: %s (passed=%t)", qualified, result.Passed)
}

// invoke runs the test callable and classifies how it ended: cleanly, with
// an assertion failure, or with any other panic.
func invoke(test func()) (failure *AssertionError, unexpected string) {
	func() {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if e, ok := rec.(*AssertionError); ok {
				failure = e
				return
			}
			unexpected = panicMessage(rec)
			if unexpected == "" {
				unexpected = "unexpected exception"
			}
		}()
		test()
	}()
	return
}

func markSuccess(c Config) string { return color.GreenString(c.successMark()) }
func markFail(c Config) string    { return color.RedString(c.failMark()) }
