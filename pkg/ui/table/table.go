// Package table renders rows of tool and provider information as terminal
// or Markdown tables. Consumers supply data via the TableData interface
// rather than building lipgloss tables directly.
package table

import (
	"fmt"
	"os"
	"strings"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is the interface that data sources implement to be rendered
// as a table.
type TableData interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i. Return nil to skip a row.
	// Wrap a value in Bold{} to emphasise it.
	Row(i int) []any
}

// Bold wraps a cell value so that it is emphasised
type Bold struct{ Value any }

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

const (
	emptyCell = "-"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render renders the table data for terminal output. When width is
// positive and the natural render is wider, columns are wrapped to fit.
func Render(data TableData, width int) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, row := range rows(data, FormatCell) {
		t.Row(row...)
	}

	result := t.Render()
	if width > 0 && lipgloss.Width(result) > width {
		t.Width(width)
		result = t.Render()
	}
	return result
}

// RenderMarkdown renders the table data as a Markdown table
func RenderMarkdown(data TableData) string {
	header := data.Header()
	if len(header) == 0 {
		return ""
	}

	var buf strings.Builder
	writeMarkdownRow(&buf, header)
	buf.WriteString("\n|")
	for range header {
		buf.WriteString("---|")
	}
	for _, row := range rows(data, formatMarkdownCell) {
		buf.WriteString("\n")
		cells := make([]string, len(header))
		for j := range cells {
			if j < len(row) {
				cells[j] = row[j]
			} else {
				cells[j] = emptyCell
			}
		}
		writeMarkdownRow(&buf, cells)
	}
	return buf.String()
}

// Width returns the width of the terminal attached to f, or zero if f is
// not a terminal
func Width(f *os.File) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	return 0
}

// IsTerminal returns true if f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// FormatCell converts a value to a display string for a terminal cell
func FormatCell(v any) string {
	if b, ok := v.(Bold); ok {
		return boldStyle.Render(FormatCell(b.Value))
	}
	return formatValue(v)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func rows(data TableData, format func(any) string) [][]string {
	result := make([][]string, 0, data.Len())
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = format(v)
		}
		result = append(result, cells)
	}
	return result
}

func formatMarkdownCell(v any) string {
	if b, ok := v.(Bold); ok {
		if inner := formatMarkdownCell(b.Value); inner != emptyCell {
			return "**" + inner + "**"
		}
		return emptyCell
	}
	return strings.ReplaceAll(formatValue(v), "|", `\|`)
}

// formatValue renders absent and zero values as a dash
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return emptyCell
	case string:
		if val == "" {
			return emptyCell
		}
		return strings.ReplaceAll(val, "\n", " ")
	case bool:
		if val {
			return "yes"
		}
		return emptyCell
	case []string:
		if len(val) == 0 {
			return emptyCell
		}
		return strings.Join(val, ", ")
	case fmt.Stringer:
		return formatValue(val.String())
	default:
		return formatValue(fmt.Sprint(val))
	}
}

func writeMarkdownRow(buf *strings.Builder, cells []string) {
	buf.WriteString("|")
	for _, cell := range cells {
		buf.WriteString(" ")
		buf.WriteString(cell)
		buf.WriteString(" |")
	}
}
