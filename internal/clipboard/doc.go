// Package clipboard classifies pasteboard contents for the paste
// dispatcher.
//
// A single clipboard entry commonly satisfies several classifications at
// once (an image copied from inside the editor carries a private marker
// alongside the generic raster payload; a copied URL is also plain text).
// Classify resolves the overlap with a fixed priority: richer and more
// origin-specific formats win over generic ones.
//
// The Pasteboard interface abstracts the platform board. SystemPasteboard
// reads the real one; platform text boards only expose plain text, so URL
// and HTML classification there is heuristic. StaticPasteboard serves
// tests and hosts that capture richer content themselves.
package clipboard
