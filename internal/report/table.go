package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// tableBuilder wraps a go-pretty writer and renders it as a light box table
// or as a GitHub-flavoured Markdown table. The title is printed on its own
// line above the table, since go-pretty wraps a title wider than the table
// and drops it from Markdown output.
type tableBuilder struct {
	writer   table.Writer
	title    string
	markdown bool
}

func newTable(markdown bool, title string) *tableBuilder {
	w := table.NewWriter()
	if !markdown {
		w.SetStyle(table.StyleLight)
	}
	return &tableBuilder{writer: w, title: title, markdown: markdown}
}

func (b *tableBuilder) header(cols ...any) {
	b.writer.AppendHeader(table.Row(cols))
}

func (b *tableBuilder) row(vals ...any) {
	b.writer.AppendRow(table.Row(vals))
}

// alignRight right-aligns the given 1-based columns.
func (b *tableBuilder) alignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight}
	}
	b.writer.SetColumnConfigs(cfgs)
}

func (b *tableBuilder) String() string {
	if b.markdown {
		if b.title == "" {
			return b.writer.RenderMarkdown()
		}
		return "### " + b.title + "\n\n" + b.writer.RenderMarkdown()
	}
	if b.title == "" {
		return b.writer.Render()
	}
	return b.title + "\n" + b.writer.Render()
}

// WriteTable renders rows under header. Text and Markdown produce a table;
// JSON and YAML produce a list of objects keyed by the header names.
func WriteTable(w io.Writer, f Format, title string, header []string, rows [][]any) error {
	switch f {
	case FormatJSON, FormatYAML:
		records := make([]map[string]any, len(rows))
		for i, row := range rows {
			rec := make(map[string]any, len(header))
			for j, h := range header {
				if j < len(row) {
					rec[h] = row[j]
				}
			}
			records[i] = rec
		}
		if f == FormatJSON {
			return writeJSON(w, records)
		}
		return writeYAML(w, records)
	case FormatText, FormatMarkdown:
		t := newTable(f == FormatMarkdown, title)
		cols := make([]any, len(header))
		for i, h := range header {
			cols[i] = h
		}
		t.header(cols...)
		for _, row := range rows {
			t.row(row...)
		}
		_, err := fmt.Fprintln(w, t.String())
		return err
	default:
		return fmt.Errorf("report: unknown format %q", f)
	}
}
