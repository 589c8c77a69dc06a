// Package report prints runner reports as tables.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/specialistvlad/gospec/internal/runner"
)

// Write renders reports as one table, a section per spec, followed by a
// totals footer.
func Write(w io.Writer, reports ...*runner.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Spec Results")

	t.AppendHeader(table.Row{"Spec", "Example", "Status", "Duration", "Error"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Spec", AutoMerge: true},
		{Name: "Example", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Error", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
	})

	var (
		total    int
		failed   int
		duration time.Duration
	)
	for _, r := range reports {
		for _, res := range r.Results {
			t.AppendRow(table.Row{
				r.Spec,
				strings.Join(res.Path, " > "),
				res.Status.String(),
				formatDuration(res.Duration),
				errorString(res.Err),
			})
			total++
			if !res.Status.Successful() {
				failed++
			}
		}
		duration += r.Duration
		t.AppendSeparator()
	}

	style := table.StyleLight
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	t.AppendFooter(table.Row{
		"TOTAL",
		fmt.Sprintf("%d examples, %d failed", total, failed),
		summaryStatus(failed),
		formatDuration(duration),
		"",
	})
	t.Render()
}

func summaryStatus(failed int) string {
	if failed > 0 {
		return "FAIL"
	}
	return "PASS"
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	return d.Round(time.Microsecond).String()
}
