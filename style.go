package docview

import "fmt"

// Color is a hex color constant resolved by the display surface.
type Color string

// Fixed colors used by the block and inline style rules.
const (
	QuoteBackground  Color = "#F5EFE0" // parchment
	QuoteBorder      Color = "#C8B98A"
	CodeBackground   Color = "#EBEBEB" // light gray
	StripeBackground Color = "#F2F2F2"
)

// headingSizes maps heading level to font size in device-independent
// units. There is deliberately no default entry: a level outside 1..6 is
// a parser contract violation and fails the render.
var headingSizes = map[int]float64{
	1: 28,
	2: 21,
	3: 16.3833,
	4: 14,
	5: 11.6167,
	6: 9.38333,
}

// HeadingFontSize resolves a heading level against the fixed size table.
func HeadingFontSize(level int) (float64, error) {
	size, ok := headingSizes[level]
	if !ok {
		return 0, fmt.Errorf("heading level %d: %w", level, ErrMissingStyle)
	}
	return size, nil
}

// Alignment is a resolved column alignment. Columns with no alignment in
// the source resolve to AlignJustify, not AlignLeft.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// Insets are per-side spacing in device-independent units.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Box is the resolved spacing of a block element.
type Box struct {
	Padding Insets
	Margin  Insets
}

// StandardBox is the spacing every top-level block starts with.
func StandardBox() Box {
	return Box{Margin: Insets{Bottom: 10}}
}

// QuoteInnerBox is forced onto every block nested inside a quote: the
// quote container owns the vertical rhythm, so children keep horizontal
// padding only and lose their margins.
func QuoteInnerBox() Box {
	return Box{Padding: Insets{Left: 5, Right: 5}}
}

// Fixed code block presentation.
const (
	// CodeLanguage is the highlight hint stamped on every code block.
	// The fence info string is ignored.
	CodeLanguage = "go"
	// CodeMaxHeight caps a displayed code block, in lines.
	CodeMaxHeight = 20
)
