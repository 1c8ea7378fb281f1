package goldmark

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/docview-dev/docview"
)

// mapInlines maps the ordered inline children of parent, one run per node.
func (m *mapper) mapInlines(parent ast.Node) ([]docview.Run, error) {
	var runs []docview.Run
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		run, err := m.mapInline(child)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (m *mapper) mapInline(node ast.Node) (docview.Run, error) {
	switch n := node.(type) {
	case *ast.Text:
		content := string(n.Segment.Value(m.source))
		// Soft breaks become spaces so the display surface can reflow
		// the paragraph at any width; hard breaks stay line breaks.
		if n.SoftLineBreak() {
			content += " "
		}
		if n.HardLineBreak() {
			content += "\n"
		}
		return &docview.Text{Content: content}, nil

	case *ast.String:
		return &docview.Text{Content: string(n.Value)}, nil

	case *ast.Emphasis:
		style := docview.SpanItalic
		if n.Level >= 2 {
			style = docview.SpanBold
		}
		return m.mapSpan(n, style)

	case *extast.Strikethrough:
		return m.mapSpan(n, docview.SpanStrikethrough)

	case *Subscript:
		return m.mapSpan(n, docview.SpanSubscript)

	case *Superscript:
		return m.mapSpan(n, docview.SpanSuperscript)

	case *ast.CodeSpan:
		return &docview.CodeSpan{
			Content:    m.codeSpanText(n),
			Background: docview.CodeBackground,
		}, nil

	case *ast.Link:
		target, err := parseTarget(string(n.Destination))
		if err != nil {
			return nil, err
		}
		children, err := m.mapInlines(n)
		if err != nil {
			return nil, err
		}
		return &docview.Link{
			Target:   target,
			Tooltip:  string(n.Title),
			Children: children,
		}, nil

	case *ast.AutoLink:
		raw := string(n.URL(m.source))
		target, err := parseTarget(raw)
		if err != nil {
			return nil, err
		}
		// The literal URL text is the sole content; autolink labels are
		// never inline-parsed.
		return &docview.Link{
			Target:   target,
			Children: []docview.Run{&docview.Text{Content: raw}},
		}, nil

	case *ast.Image:
		target, err := parseTarget(string(n.Destination))
		if err != nil {
			return nil, err
		}
		return docview.NewImage(target, 0, 0, string(n.Title)), nil

	default:
		return nil, fmt.Errorf("inline %v: %w", node.Kind(), docview.ErrUnsupportedNode)
	}
}

func (m *mapper) mapSpan(node ast.Node, style docview.SpanStyle) (docview.Run, error) {
	children, err := m.mapInlines(node)
	if err != nil {
		return nil, err
	}
	return &docview.Span{Style: style, Children: children}, nil
}

// codeSpanText collects the verbatim text of a code span from its
// segment children.
func (m *mapper) codeSpanText(node *ast.CodeSpan) string {
	var b strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(m.source))
		case *ast.String:
			b.Write(n.Value)
		}
	}
	return b.String()
}

func parseTarget(raw string) (*url.URL, error) {
	target, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", raw, docview.ErrInvalidTarget)
	}
	return target, nil
}
