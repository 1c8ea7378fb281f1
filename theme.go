package docview

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the
// viewer automatically matches any color scheme.
type Theme struct {
	Heading int // heading text
	Link    int // hyperlink text
	Code    int // plain code text when highlighting fails
	Rule    int // horizontal rules, table separators
	Muted   int // gutters, URLs, image placeholders
	Error   int // render failures
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Heading: 5,
		Link:    4,
		Code:    8,
		Rule:    8,
		Muted:   8,
		Error:   1,
	}
}
