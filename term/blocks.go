package term

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/docview-dev/docview"
)

func (r *renderer) renderList(list *docview.List, width, depth int) (string, error) {
	var buf strings.Builder
	number := list.Start
	if number <= 0 {
		number = 1
	}

	for _, item := range list.Items {
		var marker string
		if list.Marker == docview.MarkerDecimal {
			marker = fmt.Sprintf("%d. ", number)
			number++
		} else {
			marker = "• "
		}

		indent := strings.Repeat("  ", depth)
		prefix := indent + marker
		prefixWidth := runewidth.StringWidth(prefix)
		itemWidth := width - prefixWidth
		if itemWidth < minContentWidth {
			itemWidth = minContentWidth
		}

		// Collect the item's blocks. Nested lists are written through
		// directly at the next depth; everything else accumulates and is
		// flushed under the item marker.
		var itemBuf strings.Builder
		markerWritten := false
		flush := func() {
			if itemBuf.Len() == 0 {
				return
			}
			writeListItem(&buf, prefix, itemBuf.String())
			itemBuf.Reset()
			prefix = strings.Repeat(" ", prefixWidth)
			markerWritten = true
		}
		for _, block := range item.Blocks {
			if nested, ok := block.(*docview.List); ok {
				flush()
				if !markerWritten {
					// An item that opens with a sub-list still owns its
					// marker; the sub-list renders beneath it.
					buf.WriteString(strings.TrimRight(prefix, " "))
					buf.WriteString("\n")
					prefix = strings.Repeat(" ", prefixWidth)
					markerWritten = true
				}
				content, err := r.renderList(nested, width, depth+1)
				if err != nil {
					return "", err
				}
				buf.WriteString(content)
				if !strings.HasSuffix(content, "\n") {
					buf.WriteString("\n")
				}
				continue
			}
			content, err := r.renderBlockContent(block, itemWidth)
			if err != nil {
				return "", err
			}
			itemBuf.WriteString(content)
			if !strings.HasSuffix(content, "\n") {
				itemBuf.WriteString("\n")
			}
		}
		flush()
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// writeListItem writes item content under its marker, indenting
// continuation lines to align with the first.
func writeListItem(buf *strings.Builder, prefix, content string) {
	continuation := strings.Repeat(" ", runewidth.StringWidth(prefix))
	for index, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if index == 0 {
			buf.WriteString(prefix)
		} else {
			buf.WriteString(continuation)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

func (r *renderer) renderCodeBlock(code *docview.CodeBlock) (string, error) {
	text := strings.TrimRight(code.Text, "\n")
	highlighted := r.highlight(text, code.Language)

	lines := strings.Split(highlighted, "\n")
	truncated := 0
	if code.MaxHeight > 0 && len(lines) > code.MaxHeight {
		truncated = len(lines) - code.MaxHeight
		lines = lines[:code.MaxHeight]
	}

	var buf strings.Builder
	for index, line := range lines {
		if code.LineNumbers {
			buf.WriteString(r.styles.muted.Render(fmt.Sprintf("%3d │ ", index+1)))
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	if truncated > 0 {
		buf.WriteString(r.styles.muted.Render(fmt.Sprintf("    … %d more lines", truncated)))
		buf.WriteString("\n")
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// highlight syntax-highlights code with chroma, falling back to plain
// code-colored text when the highlighter fails.
func (r *renderer) highlight(code, language string) string {
	var buf strings.Builder
	if err := quick.Highlight(&buf, code, language, "terminal256", "monokai"); err != nil {
		return r.styles.code.Render(code)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (r *renderer) renderTable(table *docview.Table, width int) (string, error) {
	// Render all cells first; column widths come from visible content.
	rendered := make([][]string, len(table.Rows))
	columnCount := len(table.Columns)
	for rowIndex, row := range table.Rows {
		cells := make([]string, len(row.Cells))
		for cellIndex, cell := range row.Cells {
			content, err := r.renderRuns(cell.Content)
			if err != nil {
				return "", err
			}
			cells[cellIndex] = content
		}
		rendered[rowIndex] = cells
		if len(cells) > columnCount {
			columnCount = len(cells)
		}
	}
	if columnCount == 0 {
		return "", nil
	}

	columnWidths := make([]int, columnCount)
	for _, cells := range rendered {
		for index, cell := range cells {
			if w := lipgloss.Width(cell); w > columnWidths[index] {
				columnWidths[index] = w
			}
		}
	}

	// Cap the total width to the available space, shrinking columns
	// proportionally with a 3-cell floor.
	const separator = "  "
	totalWidth := len(separator) * (columnCount - 1)
	for _, w := range columnWidths {
		totalWidth += w
	}
	if totalWidth > width {
		usable := width - len(separator)*(columnCount-1)
		if usable < columnCount*3 {
			usable = columnCount * 3
		}
		for index := range columnWidths {
			columnWidths[index] = (columnWidths[index] * usable) / totalWidth
			if columnWidths[index] < 3 {
				columnWidths[index] = 3
			}
		}
	}

	var buf strings.Builder
	for rowIndex, row := range table.Rows {
		rowStyle := lipgloss.NewStyle()
		switch {
		case row.Header:
			rowStyle = r.styles.bold
		case row.Striped:
			rowStyle = r.styles.stripe
		}
		buf.WriteString(r.formatTableRow(rendered[rowIndex], columnWidths, table.Columns, rowStyle))
		buf.WriteString("\n")

		if row.Header {
			parts := make([]string, len(columnWidths))
			for index, w := range columnWidths {
				parts[index] = strings.Repeat("─", w)
			}
			buf.WriteString(r.styles.rule.Render(strings.Join(parts, separator)))
			buf.WriteString("\n")
		}
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// formatTableRow pads and aligns one row's cells to the column widths.
func (r *renderer) formatTableRow(cells []string, columnWidths []int, columns []docview.Column, rowStyle lipgloss.Style) string {
	const separator = "  "
	parts := make([]string, 0, len(columnWidths))
	for index, width := range columnWidths {
		var cell string
		if index < len(cells) {
			cell = cells[index]
		}

		visible := lipgloss.Width(cell)
		if visible > width {
			cell = ansi.Truncate(cell, width, "…")
			visible = lipgloss.Width(cell)
		}
		padding := width - visible
		if padding < 0 {
			padding = 0
		}

		alignment := docview.AlignJustify
		if index < len(columns) {
			alignment = columns[index].Alignment
		}
		switch alignment {
		case docview.AlignRight:
			cell = strings.Repeat(" ", padding) + cell
		case docview.AlignCenter:
			left := padding / 2
			cell = strings.Repeat(" ", left) + cell + strings.Repeat(" ", padding-left)
		default:
			// Left and justify both fill rightward; a character grid has
			// no inter-word stretching to justify with.
			cell += strings.Repeat(" ", padding)
		}
		parts = append(parts, cell)
	}
	return rowStyle.Render(strings.Join(parts, separator))
}
