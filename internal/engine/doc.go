// Package engine hosts the document-editing engine and the command channel
// that drives it.
//
// The engine is an opaque scripted runtime: a Lua program (script/document.lua)
// owning the document model, executed on a single dedicated goroutine because
// a lua.LState is not goroutine-safe. The native side never touches the
// document directly; every editing operation and every state query crosses
// the boundary as a textual command of the form
//
//	name(arg1, arg2, ...)
//
// with string arguments escaped before interpolation so no argument can
// inject additional operations.
//
// Channel.Exec enqueues a command and returns immediately. The engine
// goroutine evaluates commands strictly in issue order and invokes each
// call's completion exactly once, with the engine's scalar result (string,
// float64, bool, or nil) or with an error. Engine-side failures and panics
// are recovered, logged, and surfaced through the completion so callers
// never hang. There is no built-in timeout and no retry; an issued command
// always runs to completion.
//
// Completions execute on the engine goroutine and therefore must not block.
// Issuing a follow-up command from inside a completion is the supported way
// to chain ordered sequences ("set placeholder, then set HTML, then mark
// ready").
package engine
