package framework

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

const (
	summaryBanner = "======================================"
	summaryRule   = "--------------------------------------"
)

// Render consumes the result store and writes the grouped summary to w,
// returning the process exit code: 0 for success, 1 for failure. All
// marker and timing decisions use the configuration as it stands now.
func (r *Runner) Render(w io.Writer) int {
	cfg := r.config
	fmt.Fprintf(w, "\n%s\n", summaryBanner)
	fmt.Fprintln(w, "Test Summary:")
	fmt.Fprintln(w, summaryBanner)

	if len(r.results.Tests) == 0 {
		// An empty run is indistinguishable from a broken harness, so it
		// fails unless explicitly allowed.
		fmt.Fprintln(w, "No tests were run!")
		fmt.Fprintln(w, summaryBanner)
		if cfg.AllowEmptyTests {
			fmt.Fprintf(w, "%s (empty tests allowed)\n", color.GreenString("SUCCESS"))
			return 0
		}
		fmt.Fprintln(w, color.RedString("FAILURE"))
		return 1
	}

	groups, order := partitionByGroup(r.results.Tests)

	passed, failed := 0, 0
	for _, g := range order {
		if g != "" {
			fmt.Fprintf(w, "\n%s:\n", g)
		}
		for _, res := range groups[g] {
			timing := ""
			if cfg.ShowPerformance {
				timing = fmt.Sprintf(" (%s)", formatMillis(res.ElapsedTime))
			}
			if res.Passed {
				fmt.Fprintf(w, "%s %s%s\n", markSuccess(cfg), res.Name, timing)
				passed++
			} else {
				fmt.Fprintf(w, "%s %s - %s%s\n", markFail(cfg), res.Name, res.Error, timing)
				failed++
			}
		}
	}

	fmt.Fprintln(w, summaryRule)
	fmt.Fprintf(w, "Total: %d tests, %d passed %s, %d failed %s",
		passed+failed, passed, markSuccess(cfg), failed, markFail(cfg))
	if cfg.ShowPerformance {
		fmt.Fprintf(w, " (Total time: %s)", formatMillis(r.results.TotalTime()))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, summaryBanner)

	if r.failed || failed > 0 {
		fmt.Fprintln(w, color.RedString("FAILURE"))
		return 1
	}
	fmt.Fprintln(w, color.GreenString("SUCCESS"))
	return 0
}

// partitionByGroup splits results by group label, preserving first-seen
// group order and registration order within each group. The empty label is
// its own partition, rendered without a header.
func partitionByGroup(tests []TestResult) (map[string][]TestResult, []string) {
	groups := make(map[string][]TestResult)
	var order []string
	for _, t := range tests {
		if _, seen := groups[t.Group]; !seen {
			order = append(order, t.Group)
		}
		groups[t.Group] = append(groups[t.Group], t)
	}
	return groups, order
}

// Epilog renders the report and terminates the calling program with the
// run's exit status. It must be called exactly once, after all tests.
func (r *Runner) Epilog() {
	os.Exit(r.Render(r.out))
}
