package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/docview-dev/docview"
)

// renderRuns renders a run sequence in order into one string.
func (r *renderer) renderRuns(runs []docview.Run) (string, error) {
	var buf strings.Builder
	for _, run := range runs {
		content, err := r.renderRun(run)
		if err != nil {
			return "", err
		}
		buf.WriteString(content)
	}
	return buf.String(), nil
}

func (r *renderer) renderRun(run docview.Run) (string, error) {
	switch n := run.(type) {
	case *docview.Text:
		return n.Content, nil

	case *docview.Span:
		inner, err := r.renderRuns(n.Children)
		if err != nil {
			return "", err
		}
		switch n.Style {
		case docview.SpanBold:
			return r.styles.bold.Render(inner), nil
		case docview.SpanItalic:
			return r.styles.italic.Render(inner), nil
		case docview.SpanStrikethrough:
			return r.styles.strike.Render(inner), nil
		case docview.SpanSubscript:
			return scriptForm(ansi.Strip(inner), subscriptRunes, "_"), nil
		case docview.SpanSuperscript:
			return scriptForm(ansi.Strip(inner), superscriptRunes, "^"), nil
		}
		return "", fmt.Errorf("span style %d: %w", n.Style, docview.ErrMissingStyle)

	case *docview.CodeSpan:
		style := lipgloss.NewStyle().
			Foreground(r.styles.code.GetForeground()).
			Background(lipgloss.Color(string(n.Background)))
		return style.Render(n.Content), nil

	case *docview.Link:
		label, err := r.renderRuns(n.Children)
		if err != nil {
			return "", err
		}
		target := n.Target.String()
		// OSC 8 makes the run activatable in terminals that support it;
		// the trailing URL keeps the target discoverable everywhere else.
		out := termenv.Hyperlink(target, r.styles.link.Render(label))
		out += " " + r.styles.muted.Render("("+target+")")
		return out, nil

	case *docview.Image:
		label := "image"
		if n.Tooltip != "" {
			label = n.Tooltip
		}
		target := n.Target.String()
		placeholder := r.styles.muted.Render("["+label+"]") + " " +
			r.styles.muted.Render("("+target+")")
		return termenv.Hyperlink(target, placeholder), nil

	default:
		return "", fmt.Errorf("run %T: %w", run, docview.ErrUnsupportedNode)
	}
}

var subscriptRunes = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'o': 'ₒ', 'x': 'ₓ', 'n': 'ₙ',
}

var superscriptRunes = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

// scriptForm converts text to Unicode sub/superscript glyphs when every
// rune has one, otherwise falls back to a prefixed form like ^2 or _n.
func scriptForm(content string, table map[rune]rune, prefix string) string {
	var out strings.Builder
	for _, r := range content {
		glyph, ok := table[r]
		if !ok {
			return prefix + content
		}
		out.WriteRune(glyph)
	}
	return out.String()
}
