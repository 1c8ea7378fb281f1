// Package term lays out the docview document model as ANSI-styled
// terminal text. lipgloss provides styling, chroma highlights code
// blocks, and hyperlink runs are emitted as OSC 8 sequences.
//
// Render is a pure function of the document, width, and theme: it holds
// no state between calls and never modifies the document.
package term

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/docview-dev/docview"
)

// wrapBreakpoints are the characters word-wrapping may break after.
const wrapBreakpoints = " ,.;-+|"

// minContentWidth prevents degenerate wrapping in deeply nested content.
const minContentWidth = 10

// Render lays the document out at the given width.
func Render(document *docview.Document, width int, theme docview.Theme) (string, error) {
	if width <= 0 {
		width = 80
	}
	r := &renderer{styles: newStyles(theme)}
	out, err := r.renderBlocks(document.Blocks, width)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

type renderer struct {
	styles styles
}

// styles maps a Theme to lipgloss styles.
type styles struct {
	heading lipgloss.Style
	bold    lipgloss.Style
	italic  lipgloss.Style
	strike  lipgloss.Style
	link    lipgloss.Style
	muted   lipgloss.Style
	code    lipgloss.Style
	rule    lipgloss.Style
	stripe  lipgloss.Style
}

func newStyles(theme docview.Theme) styles {
	return styles{
		heading: lipgloss.NewStyle().Bold(true).Foreground(ansiColor(theme.Heading)),
		bold:    lipgloss.NewStyle().Bold(true),
		italic:  lipgloss.NewStyle().Italic(true),
		strike:  lipgloss.NewStyle().Strikethrough(true),
		link:    lipgloss.NewStyle().Underline(true).Foreground(ansiColor(theme.Link)),
		muted:   lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		code:    lipgloss.NewStyle().Foreground(ansiColor(theme.Code)),
		rule:    lipgloss.NewStyle().Foreground(ansiColor(theme.Rule)),
		stripe:  lipgloss.NewStyle().Background(lipgloss.Color(string(docview.StripeBackground))),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

// Model spacing is in abstract units; the terminal grid maps roughly
// five units per column and ten units per row.
func columns(units int) int { return (units + 4) / 5 }
func rowCount(units int) int { return (units + 9) / 10 }

// renderBlocks renders each block in order, separated by blank lines
// derived from the blocks' bottom margins.
func (r *renderer) renderBlocks(blocks []docview.Block, width int) (string, error) {
	var b strings.Builder
	for _, block := range blocks {
		content, err := r.renderBlock(block, width)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		for i := 0; i < rowCount(block.Spacing().Margin.Bottom); i++ {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// renderBlock renders one block and applies its padding.
func (r *renderer) renderBlock(block docview.Block, width int) (string, error) {
	box := block.Spacing()
	padLeft := columns(box.Padding.Left)
	padRight := columns(box.Padding.Right)

	inner := width - padLeft - padRight
	if inner < minContentWidth {
		inner = minContentWidth
	}
	content, err := r.renderBlockContent(block, inner)
	if err != nil {
		return "", err
	}

	if padLeft > 0 || padRight > 0 || box.Padding.Top > 0 || box.Padding.Bottom > 0 {
		content = lipgloss.NewStyle().
			PaddingLeft(padLeft).
			PaddingRight(padRight).
			PaddingTop(rowCount(box.Padding.Top)).
			PaddingBottom(rowCount(box.Padding.Bottom)).
			Render(content)
	}
	return content, nil
}

func (r *renderer) renderBlockContent(block docview.Block, width int) (string, error) {
	switch b := block.(type) {
	case *docview.Heading:
		return r.renderHeading(b, width)
	case *docview.Paragraph:
		return r.renderParagraph(b, width)
	case *docview.List:
		return r.renderList(b, width, 0)
	case *docview.CodeBlock:
		return r.renderCodeBlock(b)
	case *docview.Quote:
		return r.renderQuote(b, width)
	case *docview.Rule:
		return r.styles.rule.Render(strings.Repeat("─", width)), nil
	case *docview.Table:
		return r.renderTable(b, width)
	default:
		return "", fmt.Errorf("block %T: %w", block, docview.ErrUnsupportedNode)
	}
}

func (r *renderer) renderHeading(heading *docview.Heading, width int) (string, error) {
	// The terminal grid cannot scale glyphs, so the resolved FontSize
	// maps to weight and color: the two largest sizes get the accent
	// color, the rest plain bold.
	style := r.styles.heading
	if heading.Level > 2 {
		style = r.styles.bold
	}
	content, err := r.renderHeadingRuns(heading.Content, style)
	if err != nil {
		return "", err
	}
	return ansi.Wrap(content, width, wrapBreakpoints), nil
}

// renderHeadingRuns collapses inline decorations into the heading style
// while keeping hyperlinks intact, so links stay activatable inside
// headings.
func (r *renderer) renderHeadingRuns(runs []docview.Run, style lipgloss.Style) (string, error) {
	var buf strings.Builder
	for _, run := range runs {
		if span, ok := run.(*docview.Span); ok {
			switch span.Style {
			case docview.SpanBold, docview.SpanItalic, docview.SpanStrikethrough:
				content, err := r.renderHeadingRuns(span.Children, style)
				if err != nil {
					return "", err
				}
				buf.WriteString(content)
				continue
			}
		}
		content, err := r.renderRun(run)
		if err != nil {
			return "", err
		}
		if _, ok := run.(*docview.Link); ok {
			buf.WriteString(content)
			continue
		}
		buf.WriteString(style.Render(ansi.Strip(content)))
	}
	return buf.String(), nil
}

func (r *renderer) renderParagraph(paragraph *docview.Paragraph, width int) (string, error) {
	content, err := r.renderRuns(paragraph.Content)
	if err != nil {
		return "", err
	}
	return ansi.Wrap(content, width, wrapBreakpoints), nil
}

func (r *renderer) renderQuote(quote *docview.Quote, width int) (string, error) {
	inner := width - 2 // left border and its gap
	if inner < minContentWidth {
		inner = minContentWidth
	}
	content, err := r.renderBlocks(quote.Blocks, inner)
	if err != nil {
		return "", err
	}
	content = strings.TrimRight(content, "\n")

	style := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(string(quote.BorderColor))).
		Background(lipgloss.Color(string(quote.Background))).
		Width(inner)
	return style.Render(content), nil
}
