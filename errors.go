package docview

import "errors"

// Sentinel errors for malformed AST input. Rendering is fail-fast: any of
// these aborts the render and no partial document is produced. The parser
// collaborator guarantees well-formed output, so none of these are
// recovered locally.
var (
	// ErrUnsupportedNode indicates a block or inline node kind outside
	// the mapping tables.
	ErrUnsupportedNode = errors.New("unsupported node")

	// ErrInvalidTarget indicates a link or image URL that does not parse
	// as a well-formed reference.
	ErrInvalidTarget = errors.New("invalid link target")

	// ErrMissingStyle indicates a heading level or alignment value
	// outside the fixed style tables.
	ErrMissingStyle = errors.New("missing style entry")
)
