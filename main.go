// Command utest-demo exercises the framework package: it registers a handful
// of sample tests, runs them, and exits with the run's verdict. It is a thin
// consumer of the engine's public operations.
package main

import (
	"fmt"
	"os"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/utest-go/utest/framework"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	if params.configPath != "" {
		cfg, err := framework.LoadConfigFile(params.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot load config: %s\n", err)
			os.Exit(1)
		}
		framework.SetConfig(cfg)
	}

	framework.Prolog()

	if params.asciiMarks {
		framework.UseASCIICheckmarks(true)
	}
	if params.unicodeMarks {
		framework.UseUnicodeCheckmarks()
	}
	if params.hidePerf {
		framework.ShowPerformance(false)
	}
	if params.allowEmpty {
		framework.AllowEmptyTests()
	}
	if params.verbose {
		framework.EnableVerboseMode()
		var cmd commandBuilder
		cmd.add(os.Args...)
		fmt.Printf("Running: %s\n", cmd)
	}

	framework.RunTest("BasicMath", testBasicMath)
	framework.RunTest("StringHandling", testStringHandling)
	framework.RunTest("Pointers", testPointers)
	framework.RunTest("JSONValues", testJSONValues)
	framework.RunTest("Panics", testPanics)
	framework.RunGroupedTest("Calculator", "Addition", testCalculatorAddition)
	framework.RunGroupedTest("Calculator", "Subtraction", testCalculatorSubtraction)
	if params.withFailures {
		framework.RunTest("DeliberateFailure", func() {
			framework.AssertEquals(2+2, 5, "arithmetic is broken on purpose")
		})
		framework.RunGroupedTest("Calculator", "Overflow", func() {
			panic("integer overflow in demo calculator")
		})
	}

	if params.tableView {
		framework.DefaultRunner().WriteSummaryTable(os.Stdout)
	}

	framework.Epilog()
}

func add(a, b int) int      { return a + b }
func subtract(a, b int) int { return a - b }

func testBasicMath() {
	framework.AssertEquals(2+2, 4)
	framework.AssertNotEquals(1, 2)
	framework.AssertGt(5, 3)
	framework.AssertLte(3, 3)
	framework.AssertTrue(1 < 2)
	framework.AssertFalse(2 < 1)
}

func testStringHandling() {
	framework.AssertStrEquals("hello", "hello")
	framework.AssertStrContains("hello world", "world")
	framework.AssertStrNotContains("success message", "error")
	framework.AssertStrEquals([]rune("héllo"), "h?llo")
}

func testPointers() {
	value := 42
	p := &value
	framework.AssertNotNull(p)
	framework.AssertPtrEquals(p, p)
	var q *int
	framework.AssertNull(q)
	framework.AssertPtrNotEquals(p, new(int))
}

func testJSONValues() {
	v := ldvalue.ArrayOf(ldvalue.Int(1), ldvalue.Int(2))
	framework.AssertStrEquals(v, "[1,2]")
	obj := ldvalue.ObjectBuild().Set("name", ldvalue.String("demo")).Build()
	framework.AssertStrContains(obj, `"name"`)
}

func testPanics() {
	framework.AssertThrows(func() { panic("boom") })
	framework.AssertDoesNotThrow(func() { _ = add(1, 1) })
}

func testCalculatorAddition() {
	framework.AssertEquals(add(2, 3), 5)
	framework.AssertEquals(add(-1, 1), 0)
}

func testCalculatorSubtraction() {
	framework.AssertEquals(subtract(5, 3), 2)
	framework.AssertEquals(subtract(3, 5), -2)
}
