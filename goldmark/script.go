package goldmark

import (
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Subscript is an inline AST node for ~subscript~ text.
type Subscript struct {
	gast.BaseInline
}

// Dump implements ast.Node.
func (n *Subscript) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, nil, nil)
}

// KindSubscript is the node kind of Subscript.
var KindSubscript = gast.NewNodeKind("Subscript")

// Kind implements ast.Node.
func (n *Subscript) Kind() gast.NodeKind { return KindSubscript }

// NewSubscript returns a new Subscript node.
func NewSubscript() *Subscript { return &Subscript{} }

// Superscript is an inline AST node for ^superscript^ text.
type Superscript struct {
	gast.BaseInline
}

// Dump implements ast.Node.
func (n *Superscript) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, nil, nil)
}

// KindSuperscript is the node kind of Superscript.
var KindSuperscript = gast.NewNodeKind("Superscript")

// Kind implements ast.Node.
func (n *Superscript) Kind() gast.NodeKind { return KindSuperscript }

// NewSuperscript returns a new Superscript node.
func NewSuperscript() *Superscript { return &Superscript{} }

type scriptDelimiterProcessor struct {
	char byte
	make func() gast.Node
}

func (p *scriptDelimiterProcessor) IsDelimiter(b byte) bool { return b == p.char }

func (p *scriptDelimiterProcessor) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

func (p *scriptDelimiterProcessor) OnMatch(consumes int) gast.Node { return p.make() }

var (
	subscriptProcessor   = &scriptDelimiterProcessor{char: '~', make: func() gast.Node { return NewSubscript() }}
	superscriptProcessor = &scriptDelimiterProcessor{char: '^', make: func() gast.Node { return NewSuperscript() }}
)

// scriptParser parses single-character emphasis-style delimiters. Runs of
// more than one delimiter character are left alone, which keeps ~~text~~
// available to the GFM strikethrough parser.
type scriptParser struct {
	char      byte
	processor *scriptDelimiterProcessor
}

func (s *scriptParser) Trigger() []byte { return []byte{s.char} }

func (s *scriptParser) Parse(parent gast.Node, block text.Reader, pc parser.Context) gast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	node := parser.ScanDelimiter(line, before, 1, s.processor)
	if node == nil || node.OriginalLength != 1 {
		return nil
	}
	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

type subSuper struct{}

// SubSuper extends goldmark with ~subscript~ and ^superscript^ inline
// spans.
var SubSuper goldmark.Extender = &subSuper{}

func (e *subSuper) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		// Registered just before the GFM strikethrough parser (priority
		// 500) so single tildes resolve as subscript while double
		// tildes fall through to strikethrough.
		util.Prioritized(&scriptParser{char: '~', processor: subscriptProcessor}, 499),
		util.Prioritized(&scriptParser{char: '^', processor: superscriptProcessor}, 600),
	))
}
