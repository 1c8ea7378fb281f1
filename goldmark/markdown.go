// Package goldmark maps markdown text onto the docview document model,
// using goldmark as the parser collaborator.
//
// Render is a full rebuild: every call parses the source from scratch and
// constructs a fresh element tree. The mapping is a structure-preserving
// walk — one output element per AST node, depth-first, order-preserving —
// and it fails fast: any node kind outside the mapping tables aborts the
// render with no partial document.
package goldmark

import (
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/docview-dev/docview"
)

// parserInstance is initialized once and reused. The parser configuration
// never changes and goldmark parsers are safe to share — parsing creates
// per-call state via Parse(reader).
var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func sharedParser() goldmark.Markdown {
	parserOnce.Do(func() {
		// GFM minus task lists: the document model has no checkbox
		// element, so checkbox markers pass through as literal text
		// instead of producing unmappable nodes.
		parserInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				extension.Linkify,
				SubSuper,
			),
		)
	})
	return parserInstance
}

// Render parses markdown source and maps it onto a fresh document model.
// Empty source produces an empty document.
func Render(source string) (*docview.Document, error) {
	document := &docview.Document{}
	if source == "" {
		return document, nil
	}

	src := []byte(source)
	root := sharedParser().Parser().Parse(text.NewReader(src))

	m := &mapper{source: src}
	blocks, err := m.mapBlocks(root)
	if err != nil {
		return nil, err
	}
	document.Blocks = blocks
	return document, nil
}
