package goldmark

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/docview-dev/docview"
)

// mapper converts goldmark AST nodes into docview elements. It holds the
// raw source so text segments can be resolved.
type mapper struct {
	source []byte
}

// mapBlocks maps the ordered children of parent, one element per node.
func (m *mapper) mapBlocks(parent ast.Node) ([]docview.Block, error) {
	var blocks []docview.Block
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		block, err := m.mapBlock(child)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func (m *mapper) mapBlock(node ast.Node) (docview.Block, error) {
	switch n := node.(type) {
	case *ast.Heading:
		return m.mapHeading(n)
	case *ast.Paragraph:
		return m.mapParagraph(n)
	case *ast.TextBlock:
		// Tight list items carry their inline content in a TextBlock.
		return m.mapParagraph(n)
	case *ast.List:
		return m.mapList(n)
	case *ast.FencedCodeBlock:
		return m.mapCodeBlock(n)
	case *ast.CodeBlock:
		return m.mapCodeBlock(n)
	case *ast.Blockquote:
		return m.mapQuote(n)
	case *ast.ThematicBreak:
		return &docview.Rule{Box: docview.StandardBox()}, nil
	case *extast.Table:
		return m.mapTable(n)
	default:
		return nil, fmt.Errorf("block %v: %w", node.Kind(), docview.ErrUnsupportedNode)
	}
}

func (m *mapper) mapHeading(node *ast.Heading) (docview.Block, error) {
	size, err := docview.HeadingFontSize(node.Level)
	if err != nil {
		return nil, err
	}
	content, err := m.mapInlines(node)
	if err != nil {
		return nil, err
	}
	return &docview.Heading{
		Level:    node.Level,
		FontSize: size,
		Content:  content,
		Box:      docview.StandardBox(),
	}, nil
}

func (m *mapper) mapParagraph(node ast.Node) (docview.Block, error) {
	content, err := m.mapInlines(node)
	if err != nil {
		return nil, err
	}
	return &docview.Paragraph{
		Content: content,
		Box:     docview.StandardBox(),
	}, nil
}

func (m *mapper) mapList(node *ast.List) (docview.Block, error) {
	marker := docview.MarkerDisc
	start := 0
	if node.IsOrdered() {
		marker = docview.MarkerDecimal
		start = node.Start
	}

	var items []docview.ListItem
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			return nil, fmt.Errorf("list child %v: %w", child.Kind(), docview.ErrUnsupportedNode)
		}
		// An item may contain arbitrary nested blocks, mapped by the
		// same rules as top-level blocks.
		blocks, err := m.mapBlocks(item)
		if err != nil {
			return nil, err
		}
		items = append(items, docview.ListItem{Blocks: blocks})
	}

	return &docview.List{
		Marker: marker,
		Start:  start,
		Items:  items,
		Box:    docview.StandardBox(),
	}, nil
}

func (m *mapper) mapCodeBlock(node ast.Node) (docview.Block, error) {
	// The highlight language is a fixed stamp from the style table. The
	// fence info string is deliberately not consulted.
	return &docview.CodeBlock{
		Text:        m.blockText(node),
		Language:    docview.CodeLanguage,
		LineNumbers: true,
		MaxHeight:   docview.CodeMaxHeight,
		Box:         docview.StandardBox(),
	}, nil
}

func (m *mapper) mapQuote(node *ast.Blockquote) (docview.Block, error) {
	children, err := m.mapBlocks(node)
	if err != nil {
		return nil, err
	}
	// Children were constructed with their own spacing; inside a quote
	// the container owns spacing, so each child is rebuilt with the
	// fixed inner insets.
	inner := docview.QuoteInnerBox()
	for index, child := range children {
		children[index] = child.WithSpacing(inner)
	}
	return &docview.Quote{
		Blocks:      children,
		Background:  docview.QuoteBackground,
		BorderColor: docview.QuoteBorder,
		Box:         docview.StandardBox(),
	}, nil
}

func (m *mapper) mapTable(node *extast.Table) (docview.Block, error) {
	columns := make([]docview.Column, 0, len(node.Alignments))
	for _, alignment := range node.Alignments {
		resolved, err := columnAlignment(alignment)
		if err != nil {
			return nil, err
		}
		columns = append(columns, docview.Column{Alignment: resolved})
	}

	var rows []docview.TableRow
	index := 0
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.Kind() {
		case extast.KindTableHeader, extast.KindTableRow:
		default:
			return nil, fmt.Errorf("table child %v: %w", child.Kind(), docview.ErrUnsupportedNode)
		}
		cells, err := m.mapCells(child)
		if err != nil {
			return nil, err
		}
		rows = append(rows, docview.TableRow{
			Cells:  cells,
			Header: index == 0,
			// Striping lands on even nonzero physical indices: every
			// other row starting at the third, with the header row 0
			// never striped.
			Striped: index%2 == 0 && index != 0,
		})
		index++
	}

	return &docview.Table{
		Columns: columns,
		Rows:    rows,
		Box:     docview.StandardBox(),
	}, nil
}

func (m *mapper) mapCells(row ast.Node) ([]docview.TableCell, error) {
	var cells []docview.TableCell
	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		if child.Kind() != extast.KindTableCell {
			return nil, fmt.Errorf("row child %v: %w", child.Kind(), docview.ErrUnsupportedNode)
		}
		content, err := m.mapInlines(child)
		if err != nil {
			return nil, err
		}
		cells = append(cells, docview.TableCell{Content: content})
	}
	return cells, nil
}

// columnAlignment resolves a source column alignment. Unspecified
// alignment resolves to justify, not left.
func columnAlignment(alignment extast.Alignment) (docview.Alignment, error) {
	switch alignment {
	case extast.AlignLeft:
		return docview.AlignLeft, nil
	case extast.AlignRight:
		return docview.AlignRight, nil
	case extast.AlignCenter:
		return docview.AlignCenter, nil
	case extast.AlignNone:
		return docview.AlignJustify, nil
	default:
		return 0, fmt.Errorf("column alignment %d: %w", alignment, docview.ErrMissingStyle)
	}
}

// blockText joins a block node's line segments into one string.
func (m *mapper) blockText(node ast.Node) string {
	var b strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.Write(segment.Value(m.source))
	}
	return b.String()
}
