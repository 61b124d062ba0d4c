// Package dispatcher turns user-facing editing intents into ordered
// command-channel calls.
//
// Commands fall into four categories with different sequencing rules:
//
//   - Simple toggles (bold, indent, list toggle, style replace, undo, table
//     edits): stateless. One command is issued, then a selection-state
//     re-query is chained so the toolbar re-renders from fresh state.
//     Engine-side serialization makes these safe without guards.
//
//   - Modal-input commands (link/image/table dialogs): the dialog lifetime
//     is bracketed by startModalInput()/endModalInput() so the engine
//     preserves the pre-dialog selection across the interruption. Dialogs
//     are mutually exclusive; ending the bracket always succeeds, abnormal
//     dismissal included.
//
//   - Paste: guarded by one re-entrancy flag per surface. A paste arriving
//     while one is in flight is silently dropped, not queued; duplicate
//     platform paste events would otherwise double-insert. The flag is set
//     before the command is issued and cleared only in its completion, on
//     success and failure alike.
//
//   - Search: a long-lived mode. Activation issues searchFor with the
//     activate flag; while the mode is live, next/previous re-invoke the
//     engine's continuation without re-bracketing. The mode holds until
//     explicitly deactivated or cancelled.
//
// Whether an action is currently permitted is answered natively by the
// Allowed table over the decoded selection state and the clipboard
// classification; the engine is not consulted per action.
package dispatcher
