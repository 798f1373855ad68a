package analyze

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dtnitsch/wordshift/pkg/pipeline"
	"github.com/dtnitsch/wordshift/pkg/report"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// printedRows bounds the rows shown per comparison.
const printedRows = 20

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printOutcomes writes a one-line status per comparison and a table of the
// leading records of every written one.
func printOutcomes(w io.Writer, outcomes []*pipeline.Outcome, rounded bool) {
	for _, o := range outcomes {
		fmt.Fprintln(w, statusLine(o))
		if o.Status != pipeline.StatusWritten || len(o.Records) == 0 {
			continue
		}
		fmt.Fprintln(w, renderRecords(o, rounded))
	}
}

func statusLine(o *pipeline.Outcome) string {
	name := o.Name
	if name == "" {
		name = o.Output
	}
	if o.Status != pipeline.StatusWritten {
		return fmt.Sprintf("%s: %s (%s)", name, o.Status, o.Reason)
	}
	return fmt.Sprintf("%s: %s %s (%s, %d records)",
		name, o.Status, o.Output, humanize.Bytes(uint64(o.SizeBytes)), len(o.Records))
}

func renderRecords(o *pipeline.Outcome, rounded bool) string {
	tw := table.NewWriter()
	if rounded {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.AppendHeader(table.Row{"#", "Word", "Current", "Compare", "Change"})
	for i, r := range o.Records {
		if i == printedRows {
			break
		}
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			r.Word,
			strconv.Itoa(r.Current),
			strconv.Itoa(r.Compare),
			report.FormatDelta(r.ChangeRate),
		})
	}
	if len(o.Records) > printedRows {
		tw.AppendFooter(table.Row{"", fmt.Sprintf("%d more", len(o.Records)-printedRows), "", "", ""})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	return tw.Render()
}
