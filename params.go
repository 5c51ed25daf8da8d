package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	configPath   string
	asciiMarks   bool
	unicodeMarks bool
	hidePerf     bool
	verbose      bool
	allowEmpty   bool
	tableView    bool
	withFailures bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.configPath, "config", "", "path to a YAML run configuration file")
	fs.BoolVar(&c.asciiMarks, "ascii", false, "use [OK]/[FAIL] markers")
	fs.BoolVar(&c.unicodeMarks, "unicode", false, "use symbolic checkmark markers")
	fs.BoolVar(&c.hidePerf, "hide-performance", false, "hide per-test and aggregate timing")
	fs.BoolVar(&c.verbose, "verbose", false, "announce each test before it runs")
	fs.BoolVar(&c.allowEmpty, "allow-empty", false, "treat a run with no tests as a success")
	fs.BoolVar(&c.tableView, "table", false, "also print the results as a console table")
	fs.BoolVar(&c.withFailures, "with-failures", false, "include deliberately failing demo tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.asciiMarks && c.unicodeMarks {
		fmt.Fprintln(os.Stderr, "-ascii and -unicode are mutually exclusive")
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
