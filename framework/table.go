package framework

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteSummaryTable renders the result store as a console table, one row per
// test with group rows merged. It is an optional alternative view of the
// results; the canonical summary and the exit-status verdict still come from
// Render.
func (r *Runner) WriteSummaryTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Test Summary (%s)", formatMillis(r.results.TotalTime())))

	t.AppendHeader(table.Row{"Group", "Test", "Status", "Duration", "Error"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Group", AutoMerge: true},
		{Name: "Test", WidthMax: 50, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Status", Align: text.AlignCenter},
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Error", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
	})

	groups, order := partitionByGroup(r.results.Tests)
	passed, failed := 0, 0
	for _, g := range order {
		label := g
		if label == "" {
			label = "-"
		}
		for _, res := range groups[g] {
			status := "PASS"
			if !res.Passed {
				status = "FAIL"
				failed++
			} else {
				passed++
			}
			t.AppendRow(table.Row{
				label,
				res.Name,
				status,
				formatMillis(res.ElapsedTime),
				res.Error,
			})
		}
	}

	verdict := "PASS"
	if failed > 0 || r.failed {
		verdict = "FAIL"
	}
	t.AppendFooter(table.Row{
		"",
		"Total",
		verdict,
		formatMillis(r.results.TotalTime()),
		fmt.Sprintf("%d passed, %d failed", passed, failed),
	})

	t.Render()
}
