package term_test

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docview-dev/docview"
	"github.com/docview-dev/docview/goldmark"
	"github.com/docview-dev/docview/term"
)

func TestMain(m *testing.M) {
	// Force ANSI color output so styled elements produce visible escape
	// codes regardless of the test environment's terminal.
	lipgloss.SetColorProfile(termenv.ANSI256)
	os.Exit(m.Run())
}

// render parses markdown and lays it out, failing the test on any error.
func render(t *testing.T, source string, width int) string {
	t.Helper()
	document, err := goldmark.Render(source)
	require.NoError(t, err)
	out, err := term.Render(document, width, docview.DefaultTheme())
	require.NoError(t, err)
	return out
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("empty document renders empty", func(t *testing.T) {
		t.Parallel()
		out, err := term.Render(&docview.Document{}, 80, docview.DefaultTheme())
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("same document renders identically twice", func(t *testing.T) {
		t.Parallel()
		document, err := goldmark.Render("# T\n\npara with **bold**\n")
		require.NoError(t, err)
		theme := docview.DefaultTheme()

		first, err := term.Render(document, 60, theme)
		require.NoError(t, err)
		second, err := term.Render(document, 60, theme)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("nonpositive width falls back to a default", func(t *testing.T) {
		t.Parallel()
		out := render(t, "hello", 0)
		assert.Contains(t, ansi.Strip(out), "hello")
	})

	t.Run("paragraph wraps to width", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("word ", 20)
		out := render(t, long, 30)
		for _, line := range strings.Split(ansi.Strip(out), "\n") {
			assert.LessOrEqual(t, len(line), 30)
		}
	})

	t.Run("heading renders distinct from plain text", func(t *testing.T) {
		t.Parallel()
		heading := render(t, "# Title", 80)
		paragraph := render(t, "Title", 80)
		assert.Contains(t, ansi.Strip(heading), "Title")
		assert.NotEqual(t, heading, paragraph)
	})
}

func TestRenderLists(t *testing.T) {
	t.Parallel()

	t.Run("disc markers", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(render(t, "- one\n- two\n", 80))
		assert.Contains(t, out, "• one")
		assert.Contains(t, out, "• two")
	})

	t.Run("decimal markers respect the start number", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(render(t, "3. third\n4. fourth\n", 80))
		assert.Contains(t, out, "3. third")
		assert.Contains(t, out, "4. fourth")
	})

	t.Run("nested list indents", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(render(t, "- outer\n  - inner\n", 80))
		assert.Contains(t, out, "• outer")
		assert.Contains(t, out, "  • inner")
	})

	t.Run("item opening with a sub-list keeps its marker", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(render(t, "- - inner\n- after\n", 80))
		lines := strings.Split(out, "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		assert.Equal(t, "•", strings.TrimRight(lines[0], " "))
		assert.Equal(t, "  • inner", strings.TrimRight(lines[1], " "))
		assert.Contains(t, out, "• after")
	})
}

func TestRenderCodeBlock(t *testing.T) {
	t.Parallel()

	t.Run("line numbers in the gutter", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(render(t, "```\nalpha\nbeta\n```", 80))
		assert.Contains(t, out, "1 │ ")
		assert.Contains(t, out, "2 │ ")
		assert.Contains(t, out, "alpha")
		assert.Contains(t, out, "beta")
	})

	t.Run("height is bounded with a truncation note", func(t *testing.T) {
		t.Parallel()
		var lines []string
		for i := 0; i < docview.CodeMaxHeight+5; i++ {
			lines = append(lines, "line")
		}
		source := "```\n" + strings.Join(lines, "\n") + "\n```"
		out := ansi.Strip(render(t, source, 80))
		assert.Contains(t, out, "… 5 more lines")
	})
}

func TestRenderQuote(t *testing.T) {
	t.Parallel()

	out := render(t, "> quoted words\n", 80)
	stripped := ansi.Strip(out)
	assert.Contains(t, stripped, "quoted words")
	// Left accent border.
	assert.Contains(t, stripped, "┃")
}

func TestRenderRule(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(render(t, "a\n\n---\n\nb\n", 40))
	assert.Contains(t, out, strings.Repeat("─", 40))
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	t.Run("header separator and cell content", func(t *testing.T) {
		t.Parallel()
		source := "| name | count |\n| --- | ---: |\n| alpha | 1 |\n| beta | 22 |\n"
		out := ansi.Strip(render(t, source, 80))
		assert.Contains(t, out, "name")
		assert.Contains(t, out, "alpha")
		assert.Contains(t, out, "─")
	})

	t.Run("right alignment pads on the left", func(t *testing.T) {
		t.Parallel()
		source := "| name | count |\n| --- | ---: |\n| alpha | 1 |\n"
		out := ansi.Strip(render(t, source, 80))
		// "count" is 5 wide; a right-aligned "1" is padded to "    1".
		assert.Contains(t, out, "    1")
	})
}

func TestRenderInlines(t *testing.T) {
	t.Parallel()

	t.Run("link emits an OSC 8 hyperlink and a visible URL", func(t *testing.T) {
		t.Parallel()
		out := render(t, "[click](https://example.com)", 80)
		assert.Contains(t, out, "\x1b]8;")
		assert.Contains(t, ansi.Strip(out), "(https://example.com)")
		assert.Contains(t, ansi.Strip(out), "click")
	})

	t.Run("link inside a heading stays a hyperlink", func(t *testing.T) {
		t.Parallel()
		out := render(t, "# see [docs](https://example.com/docs)", 80)
		assert.Contains(t, out, "\x1b]8;")
		assert.Contains(t, ansi.Strip(out), "docs")
		assert.Contains(t, ansi.Strip(out), "(https://example.com/docs)")
	})

	t.Run("link wrapped in heading emphasis stays a hyperlink", func(t *testing.T) {
		t.Parallel()
		out := render(t, "# **[docs](https://example.com/docs)**", 80)
		assert.Contains(t, out, "\x1b]8;")
	})

	t.Run("image renders a placeholder with its target", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(render(t, `![alt](https://example.com/p.png "a pic")`, 80))
		assert.Contains(t, out, "[a pic]")
		assert.Contains(t, out, "(https://example.com/p.png)")
	})

	t.Run("subscript and superscript use unicode glyphs", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(render(t, "H~2~O and x^2^", 80))
		assert.Contains(t, out, "H₂O")
		assert.Contains(t, out, "x²")
	})

	t.Run("untranslatable script text falls back to a prefixed form", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(render(t, "x^abc^", 80))
		assert.Contains(t, out, "^abc")
	})
}

func TestRenderUnknownSpanStyle(t *testing.T) {
	t.Parallel()

	document := &docview.Document{Blocks: []docview.Block{
		&docview.Paragraph{Content: []docview.Run{
			&docview.Span{Style: docview.SpanStyle(99)},
		}},
	}}
	_, err := term.Render(document, 80, docview.DefaultTheme())
	assert.ErrorIs(t, err, docview.ErrMissingStyle)
}
