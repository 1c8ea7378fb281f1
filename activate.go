package docview

// Activator opens a resolved link target when the user activates a
// hyperlink or image. The renderer only resolves and forwards references;
// it never opens URIs or fetches image bytes itself.
type Activator interface {
	// Activate opens the target. It is invoked synchronously from the
	// host's interaction handler; errors are the activator's concern,
	// not the renderer's.
	Activate(url string) error
}
