// Package report renders collected statistics for people and for disk.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"vacancy-stats/internal/stats"
)

// Header is the fixed column set of every statistics table.
var Header = []string{"Language", "Vacancies found", "Vacancies processed", "Average salary"}

// TableRenderer writes titled statistics tables
type TableRenderer struct {
	out       io.Writer
	useColors bool
	printer   *message.Printer
}

// NewTableRenderer creates a renderer writing to stdout. Numbers are grouped
// according to locale (a BCP 47 tag such as "en" or "ru").
func NewTableRenderer(locale string) *TableRenderer {
	return NewTableRendererWithWriter(os.Stdout, locale, !color.NoColor)
}

// NewTableRendererWithWriter creates a renderer with a custom writer
func NewTableRendererWithWriter(w io.Writer, locale string, useColors bool) *TableRenderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &TableRenderer{
		out:       w,
		useColors: useColors,
		printer:   message.NewPrinter(tag),
	}
}

// Render prints title followed by one row per language, in slice order.
func (r *TableRenderer) Render(title string, rows []stats.LanguageStats) error {
	if r.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(r.out, "%s\n", title)
	} else {
		fmt.Fprintf(r.out, "%s\n", title)
	}

	table := tablewriter.NewTable(r.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.Off,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleDouble),
		}),
	)

	table.Header(Header)
	if err := table.Bulk(r.Rows(rows)); err != nil {
		return fmt.Errorf("failed to add rows to %q table: %w", title, err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render %q table: %w", title, err)
	}
	fmt.Fprintln(r.out)
	return nil
}

// Rows converts statistics to table cells.
func (r *TableRenderer) Rows(rows []stats.LanguageStats) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Language,
			r.printer.Sprintf("%d", row.Found),
			r.printer.Sprintf("%d", row.Processed),
			r.printer.Sprintf("%d", row.Average),
		})
	}
	return cells
}

// RenderString renders a table without colors and returns it.
func RenderString(title string, rows []stats.LanguageStats, locale string) (string, error) {
	var buf bytes.Buffer
	if err := NewTableRendererWithWriter(&buf, locale, false).Render(title, rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}
