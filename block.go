package docview

// Block is one rendered block-level element. Implementations are small
// value-like structs that carry resolved style attributes; a Block is
// never mutated after construction.
type Block interface {
	// Spacing returns the block's resolved padding and margin.
	Spacing() Box
	// WithSpacing returns a copy of the block with its padding and margin
	// replaced. The receiver is left untouched.
	WithSpacing(Box) Block

	block()
}

// Heading is a labeled block whose font size was resolved from the fixed
// heading size table.
type Heading struct {
	Level    int     // 1..6, guaranteed by the parser contract
	FontSize float64 // from HeadingFontSize
	Content  []Run
	Box      Box
}

func (h *Heading) block()       {}
func (h *Heading) Spacing() Box { return h.Box }
func (h *Heading) WithSpacing(box Box) Block {
	copied := *h
	copied.Box = box
	return &copied
}

// Paragraph is a plain block of inline content.
type Paragraph struct {
	Content []Run
	Box     Box
}

func (p *Paragraph) block()       {}
func (p *Paragraph) Spacing() Box { return p.Box }
func (p *Paragraph) WithSpacing(box Box) Block {
	copied := *p
	copied.Box = box
	return &copied
}

// Marker selects the glyph drawn before each list item.
type Marker int

const (
	MarkerDisc Marker = iota
	MarkerDecimal
)

// List is an ordered or bulleted list. Items may contain arbitrary nested
// blocks, not just paragraphs.
type List struct {
	Marker Marker
	Start  int // first item number for decimal markers
	Items  []ListItem
	Box    Box
}

// ListItem holds the blocks of a single list item.
type ListItem struct {
	Blocks []Block
}

func (l *List) block()       {}
func (l *List) Spacing() Box { return l.Box }
func (l *List) WithSpacing(box Box) Block {
	copied := *l
	copied.Box = box
	return &copied
}

// CodeBlock is a read-only, line-numbered code display. Language is the
// fixed highlight hint from the style table; the source fence language is
// not consulted.
type CodeBlock struct {
	Text        string
	Language    string
	LineNumbers bool
	MaxHeight   int // in lines; 0 means unbounded
	Box         Box
}

func (c *CodeBlock) block()       {}
func (c *CodeBlock) Spacing() Box { return c.Box }
func (c *CodeBlock) WithSpacing(box Box) Block {
	copied := *c
	copied.Box = box
	return &copied
}

// Quote is a container with a parchment background and a left accent
// border. Every nested block carries QuoteInnerBox spacing regardless of
// what it would carry at top level.
type Quote struct {
	Blocks      []Block
	Background  Color
	BorderColor Color
	Box         Box
}

func (q *Quote) block()       {}
func (q *Quote) Spacing() Box { return q.Box }
func (q *Quote) WithSpacing(box Box) Block {
	copied := *q
	copied.Box = box
	return &copied
}

// Rule is a full-width horizontal divider.
type Rule struct {
	Box Box
}

func (r *Rule) block()       {}
func (r *Rule) Spacing() Box { return r.Box }
func (r *Rule) WithSpacing(box Box) Block {
	copied := *r
	copied.Box = box
	return &copied
}

// Column carries the resolved alignment of one table column.
type Column struct {
	Alignment Alignment
}

// TableRow is one physical table row. Row 0 is the header: bold, never
// striped. A data row is striped iff its physical index is even and
// nonzero, which puts the alternate background on every other row
// starting at the third physical row.
type TableRow struct {
	Cells   []TableCell
	Header  bool
	Striped bool
}

// TableCell holds one cell's inline content.
type TableCell struct {
	Content []Run
}

// Table is a rendered table with one header row and zero or more data
// rows.
type Table struct {
	Columns []Column
	Rows    []TableRow
	Box     Box
}

func (t *Table) block()       {}
func (t *Table) Spacing() Box { return t.Box }
func (t *Table) WithSpacing(box Box) Block {
	copied := *t
	copied.Box = box
	return &copied
}
