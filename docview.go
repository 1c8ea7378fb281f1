// Package docview defines the styled document model produced by rendering
// markdown: a tree of block and run elements carrying resolved style
// attributes (sizes, colors, spacing, alignment) instead of raw markup.
//
// The model is rebuilt from scratch on every render. Elements are
// value-like: freshly constructed, never shared between renders or sibling
// positions, and never mutated after construction.
package docview

// Document is one fully rendered document: the ordered top-level blocks
// produced from a single source text. Its lifetime is exactly one render
// cycle; the next render discards it wholesale.
type Document struct {
	Blocks []Block
}

// Walk visits every block depth-first in document order, including blocks
// nested inside list items and quotes.
func (d *Document) Walk(fn func(Block)) {
	walkBlocks(d.Blocks, fn)
}

func walkBlocks(blocks []Block, fn func(Block)) {
	for _, block := range blocks {
		fn(block)
		switch n := block.(type) {
		case *List:
			for _, item := range n.Items {
				walkBlocks(item.Blocks, fn)
			}
		case *Quote:
			walkBlocks(n.Blocks, fn)
		}
	}
}

// WalkRuns visits every run in the sequence depth-first, including
// children of styled spans and link labels.
func WalkRuns(runs []Run, fn func(Run)) {
	for _, run := range runs {
		fn(run)
		switch n := run.(type) {
		case *Span:
			WalkRuns(n.Children, fn)
		case *Link:
			WalkRuns(n.Children, fn)
		}
	}
}

// Runs visits every run of every block in the document, depth-first.
func (d *Document) Runs(fn func(Run)) {
	d.Walk(func(block Block) {
		switch n := block.(type) {
		case *Heading:
			WalkRuns(n.Content, fn)
		case *Paragraph:
			WalkRuns(n.Content, fn)
		case *Table:
			for _, row := range n.Rows {
				for _, cell := range row.Cells {
					WalkRuns(cell.Content, fn)
				}
			}
		}
	})
}
