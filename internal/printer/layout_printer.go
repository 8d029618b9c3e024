package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mozilla-ai/gnuusage/internal/cmd/output"
	"github.com/mozilla-ai/gnuusage/internal/usage"
)

var _ output.Printer[usage.Layout] = (*LayoutPrinter)(nil)

type LayoutPrinter struct {
	headerFunc output.WriteFunc[usage.Layout]
	footerFunc output.WriteFunc[usage.Layout]
}

func (p *LayoutPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *LayoutPrinter) SetHeader(fn output.WriteFunc[usage.Layout]) {
	p.headerFunc = fn
}

func (p *LayoutPrinter) Item(w io.Writer, l usage.Layout) error {
	notice := "no"
	if l.MandatoryNotice {
		notice = "yes"
	}

	if _, err := fmt.Fprintf(
		w,
		"Layout for '%s' (%d options)\n  column width: %d\n  mandatory notice: %s\n",
		l.Program,
		len(l.Rows),
		l.ColumnWidth,
		notice,
	); err != nil {
		return err
	}

	if len(l.Rows) == 0 {
		return nil
	}

	table := [][]string{{"SHORT", "LONG", "EFFECTIVE", "PADDING", "DOC COLUMN"}}
	for _, r := range l.Rows {
		doc := "-"
		if r.HasDoc {
			doc = strconv.Itoa(r.DocColumn)
		}
		table = append(table, []string{
			orDash(r.Short),
			orDash(r.Long),
			strconv.Itoa(r.Effective),
			strconv.Itoa(r.Padding),
			doc,
		})
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	return writeTable(w, table)
}

func (p *LayoutPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *LayoutPrinter) SetFooter(fn output.WriteFunc[usage.Layout]) {
	p.footerFunc = fn
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// writeTable left aligns every column, measuring cells in grapheme clusters.
func writeTable(w io.Writer, rows [][]string) error {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], usage.GraphemeCount(cell, usage.MaxMeasuredGraphemes))
		}
	}

	for _, row := range rows {
		var sb strings.Builder
		sb.WriteString("  ")
		for i, cell := range row {
			sb.WriteString(cell)
			if i < len(row)-1 {
				gap := widths[i] - usage.GraphemeCount(cell, usage.MaxMeasuredGraphemes) + 2
				sb.WriteString(strings.Repeat(" ", gap))
			}
		}
		sb.WriteString("\n")

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}
