package dispatcher

import (
	"github.com/VadimPavlov/MarkupEditor/internal/clipboard"
	"github.com/VadimPavlov/MarkupEditor/internal/selection"
)

// Action identifies a user-facing toolbar intent.
type Action string

// Toolbar actions.
const (
	ActionBold        Action = "format.bold"
	ActionItalic      Action = "format.italic"
	ActionUnderline   Action = "format.underline"
	ActionStrike      Action = "format.strike"
	ActionSubscript   Action = "format.subscript"
	ActionSuperscript Action = "format.superscript"
	ActionCode        Action = "format.code"

	ActionStyle   Action = "block.style"
	ActionQuote   Action = "block.quote"
	ActionIndent  Action = "block.indent"
	ActionOutdent Action = "block.outdent"
	ActionList    Action = "block.list"

	ActionLink  Action = "insert.link"
	ActionImage Action = "insert.image"
	ActionTable Action = "insert.table"

	ActionCopy  Action = "edit.copy"
	ActionCut   Action = "edit.cut"
	ActionPaste Action = "edit.paste"
	ActionUndo  Action = "edit.undo"
	ActionRedo  Action = "edit.redo"

	ActionSearch Action = "edit.search"
)

// Direction selects which way a search continues.
type Direction string

// Search directions.
const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// Position selects where a table row or column is added relative to the
// current cell.
type Position string

// Insert positions.
const (
	Before Position = "BEFORE"
	After  Position = "AFTER"
)

// Allowed reports whether an action is currently permitted, given the
// decoded selection state and the clipboard classification. pasteKind is
// consulted only for ActionPaste; pass clipboard.KindNone when unknown.
// Unknown actions are denied.
func Allowed(a Action, st *selection.State, pasteKind clipboard.Kind) bool {
	if st == nil || !st.Valid {
		return false
	}
	switch a {
	case ActionBold, ActionItalic, ActionUnderline, ActionStrike,
		ActionSubscript, ActionSuperscript, ActionCode:
		return st.CanApplyFormat()
	case ActionStyle, ActionQuote:
		return st.CanApplyStyle()
	case ActionIndent:
		return st.CanIndent()
	case ActionOutdent:
		return st.CanOutdent()
	case ActionList:
		return st.CanToggleList()
	case ActionLink:
		return st.CanInsertLink()
	case ActionImage:
		return st.CanInsertImage()
	case ActionTable:
		return st.CanInsertTable()
	case ActionCopy, ActionCut:
		return st.CanCopyCut()
	case ActionPaste:
		return pasteKind != clipboard.KindNone
	case ActionUndo, ActionRedo, ActionSearch:
		return true
	default:
		return false
	}
}
