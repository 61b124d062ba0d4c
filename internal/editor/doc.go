// Package editor assembles one editing surface: an engine runtime, a
// per-surface selection state, a command dispatcher, and the wiring to the
// process-wide active-editor registry.
//
// The load lifecycle is an explicitly chained command sequence: the
// placeholder is set, then the document HTML, and only in the final
// completion does the surface become ready. Focus requests before that
// point are silent no-ops, which is the registry's initialization gate.
//
// On every focus change naming this surface, the editor re-queries the
// engine's selection state and publishes the decoded result; focus and
// state travel separately so observers never render a stale state under a
// fresh focus.
//
// The editor never presents UI. Failures the user should hear about
// (unreadable pasteboard, failed load, rejected insert) are delivered as
// Reports through the host's callback.
package editor
