// Package registry arbitrates which editor surface is the active one
// process-wide.
//
// At most one surface holds focus at a time. A surface registers itself,
// and once its engine load has completed it may request focus; a request
// from a surface that is unknown or not yet ready is a silent no-op, never
// an error. Observers subscribe to focus changes and are notified
// synchronously on the requester's goroutine, exactly once per successful
// request.
//
// The registry also owns the process-scope mirror of the active surface's
// selection state. A focused surface publishes its decoded state here;
// publications from a surface that is not current are ignored. A focus
// change deliberately does not carry state: the newly focused surface
// re-queries its engine and publishes independently, so observers never
// see a stale state attributed to a fresh focus.
package registry
