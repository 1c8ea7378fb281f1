package docview

import "net/url"

// Run is one rendered inline element.
type Run interface {
	run()
}

// Text is a plain text run, content verbatim.
type Text struct {
	Content string
}

func (t *Text) run() {}

// SpanStyle selects the decoration or font variant of a Span.
type SpanStyle int

const (
	SpanBold SpanStyle = iota
	SpanItalic
	SpanStrikethrough
	SpanSubscript
	SpanSuperscript
)

// Span is a styled run group wrapping nested runs.
type Span struct {
	Style    SpanStyle
	Children []Run
}

func (s *Span) run() {}

// CodeSpan is inline code: verbatim text on a fixed light-gray
// background. Code content is never inline-parsed further.
type CodeSpan struct {
	Content    string
	Background Color
}

func (c *CodeSpan) run() {}

// Link is a hyperlink run group. Target is the resolved navigation
// reference handed to the activation collaborator; the link itself never
// opens URIs.
type Link struct {
	Target   *url.URL
	Tooltip  string
	Children []Run
}

func (l *Link) run() {}

// Image is an embedded image run. Target is the resolved URI handed to
// the host's resource loader. Width and Height of 0 mean natural size.
type Image struct {
	Target  *url.URL
	Width   int
	Height  int
	Tooltip string
}

func (i *Image) run() {}

// NewImage builds an image run. Declared sizes of zero or less collapse
// to 0, which displays the image at its natural size rather than as a
// zero-size box.
func NewImage(target *url.URL, width, height int, tooltip string) *Image {
	if width <= 0 {
		width = 0
	}
	if height <= 0 {
		height = 0
	}
	return &Image{Target: target, Width: width, Height: height, Tooltip: tooltip}
}
