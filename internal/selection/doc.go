// Package selection defines the native mirror of the document engine's
// selection and formatting context.
//
// A State is a structured snapshot of what is selected or focused in the
// document: the text span, enclosing link or image, table context, paragraph
// style, list context, and the set of active character formats. One State
// instance exists per editor surface; a second, registry-owned instance
// mirrors the currently active surface (see the registry package).
//
// States are replaced whole, never patched in place: Decode produces a fresh
// State from the engine's wire payload and Reset copies one State over
// another. When Valid is false every optional field is nil or zero and every
// capability predicate denies its action.
//
// Decode never fails. Malformed, empty, or non-JSON payloads produce an
// invalid empty State; individual fields that are absent or of the wrong
// shape take documented defaults (booleans false, counts zero, enums their
// sentinel, strings empty).
package selection
