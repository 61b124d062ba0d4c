package dispatcher

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/VadimPavlov/MarkupEditor/internal/engine"
	"github.com/VadimPavlov/MarkupEditor/internal/selection"
)

// Conn is the dispatcher's view of the command channel: fire a command,
// receive its single completion.
type Conn interface {
	Exec(cmd engine.Command, fn engine.CompletionFunc)
}

// StateSink receives each freshly decoded selection state. Implementations
// typically reset the surface's state instance and publish it; they run on
// the engine goroutine and must not block.
type StateSink func(*selection.State)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatcher's logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) { d.log = log }
}

// WithPasteAsPlainText makes HTML clipboard entries paste as plain text.
func WithPasteAsPlainText(v bool) Option {
	return func(d *Dispatcher) { d.pastePlain = v }
}

// WithSearchWrap makes a search that runs past the last match continue
// from the opposite end of the document.
func WithSearchWrap(v bool) Option {
	return func(d *Dispatcher) { d.searchWrap = v }
}

// WithErrorFunc installs a callback for engine-reported command failures,
// in addition to logging. It runs on the engine goroutine.
func WithErrorFunc(fn func(command string, err error)) Option {
	return func(d *Dispatcher) { d.errFn = fn }
}

// ModalState is the modal-input bracketing state.
type ModalState int

const (
	// ModalIdle means no dialog is up and no bracket is open.
	ModalIdle ModalState = iota

	// ModalPending means startModalInput() was issued but has not
	// completed yet.
	ModalPending

	// ModalActive means the engine acknowledged the bracket; a dialog
	// may be shown.
	ModalActive
)

// String returns the state name.
func (m ModalState) String() string {
	switch m {
	case ModalPending:
		return "pending"
	case ModalActive:
		return "active"
	default:
		return "idle"
	}
}

// Dispatcher translates toolbar intents for one editor surface into
// ordered command-channel calls. One Dispatcher exists per surface; the
// paste guard and modal state are surface-private and need no
// cross-surface locking.
type Dispatcher struct {
	conn  Conn
	sink  StateSink
	log   *zap.Logger
	errFn func(command string, err error)

	pastePlain bool
	searchWrap bool

	modalMu sync.Mutex
	modal   ModalState

	pasting atomic.Bool

	searchMu     sync.Mutex
	searchActive bool
	searchText   string
	searchDir    Direction
}

// New creates a dispatcher issuing commands on conn and delivering decoded
// states to sink. A nil sink discards states.
func New(conn Conn, sink StateSink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		conn:  conn,
		sink:  sink,
		log:   zap.NewNop(),
		errFn: func(string, error) {},
	}
	if d.sink == nil {
		d.sink = func(*selection.State) {}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RefreshState re-queries the engine's selection state, decodes the reply,
// and delivers it to the sink. A transport or engine failure decodes as
// the invalid empty state, so the toolbar degrades instead of hanging.
func (d *Dispatcher) RefreshState() {
	d.conn.Exec(engine.NewCommand("getSelectionState"), func(result any, err error) {
		payload, _ := result.(string)
		if err != nil {
			d.log.Warn("selection state query failed", zap.Error(err))
			payload = ""
		}
		d.sink(selection.Decode(payload))
	})
}

// mutate issues cmd and chains a state re-query behind it so the toolbar
// reflects the command's effect.
func (d *Dispatcher) mutate(cmd engine.Command) {
	d.conn.Exec(cmd, func(_ any, err error) {
		if err != nil {
			d.log.Warn("command failed",
				zap.String("command", cmd.Name()),
				zap.Error(err))
			d.errFn(cmd.Name(), err)
		}
		d.RefreshState()
	})
}

// Character format toggles. Idempotent engine-side; no guard needed.

// ToggleBold toggles bold at the selection.
func (d *Dispatcher) ToggleBold() { d.mutate(engine.NewCommand("toggleBold")) }

// ToggleItalic toggles italic at the selection.
func (d *Dispatcher) ToggleItalic() { d.mutate(engine.NewCommand("toggleItalic")) }

// ToggleUnderline toggles underline at the selection.
func (d *Dispatcher) ToggleUnderline() { d.mutate(engine.NewCommand("toggleUnderline")) }

// ToggleStrike toggles strikethrough at the selection.
func (d *Dispatcher) ToggleStrike() { d.mutate(engine.NewCommand("toggleStrike")) }

// ToggleSubscript toggles subscript at the selection.
func (d *Dispatcher) ToggleSubscript() { d.mutate(engine.NewCommand("toggleSubscript")) }

// ToggleSuperscript toggles superscript at the selection.
func (d *Dispatcher) ToggleSuperscript() { d.mutate(engine.NewCommand("toggleSuperscript")) }

// ToggleCode toggles inline code at the selection.
func (d *Dispatcher) ToggleCode() { d.mutate(engine.NewCommand("toggleCode")) }

// Block structure.

// Indent indents the selection.
func (d *Dispatcher) Indent() { d.mutate(engine.NewCommand("indent")) }

// Outdent outdents the selection.
func (d *Dispatcher) Outdent() { d.mutate(engine.NewCommand("outdent")) }

// ToggleQuote toggles the enclosing blockquote.
func (d *Dispatcher) ToggleQuote() { d.mutate(engine.NewCommand("toggleQuote")) }

// ToggleList toggles list membership of the given type.
func (d *Dispatcher) ToggleList(t selection.ListType) {
	d.mutate(engine.NewCommand("toggleListItem", engine.Str(t.String())))
}

// ReplaceStyle replaces the paragraph style. An undefined old style is
// passed to the engine as the explicit null sentinel, not skipped.
func (d *Dispatcher) ReplaceStyle(old, new selection.ParagraphStyle) error {
	if new == selection.StyleUndefined {
		return ErrStyleRequired
	}
	oldArg := engine.Null()
	if old != selection.StyleUndefined {
		oldArg = engine.Str(old.String())
	}
	d.mutate(engine.NewCommand("replaceStyle", oldArg, engine.Str(new.String())))
	return nil
}

// Links and images.

// InsertLink wraps the selection in a link to href.
func (d *Dispatcher) InsertLink(href string) {
	d.mutate(engine.NewCommand("insertLink", engine.Str(href)))
}

// DeleteLink removes the enclosing link.
func (d *Dispatcher) DeleteLink() { d.mutate(engine.NewCommand("deleteLink")) }

// InsertImage inserts an image. alt may be empty.
func (d *Dispatcher) InsertImage(src, alt string) {
	altArg := engine.Null()
	if alt != "" {
		altArg = engine.Str(alt)
	}
	d.mutate(engine.NewCommand("insertImage", engine.Str(src), altArg))
}

// ModifyImage updates the selected image. An empty src removes it.
func (d *Dispatcher) ModifyImage(src, alt string) {
	srcArg, altArg := engine.Null(), engine.Null()
	if src != "" {
		srcArg = engine.Str(src)
	}
	if alt != "" {
		altArg = engine.Str(alt)
	}
	d.mutate(engine.NewCommand("modifyImage", srcArg, altArg))
}

// Tables.

// InsertTable inserts a rows-by-cols table at the selection.
func (d *Dispatcher) InsertTable(rows, cols int) {
	d.mutate(engine.NewCommand("insertTable", engine.Int(rows), engine.Int(cols)))
}

// AddRow adds a row before or after the current one.
func (d *Dispatcher) AddRow(pos Position) {
	d.mutate(engine.NewCommand("addRow", engine.Str(string(pos))))
}

// DeleteRow deletes the current row.
func (d *Dispatcher) DeleteRow() { d.mutate(engine.NewCommand("deleteRow")) }

// AddCol adds a column before or after the current one.
func (d *Dispatcher) AddCol(pos Position) {
	d.mutate(engine.NewCommand("addCol", engine.Str(string(pos))))
}

// DeleteCol deletes the current column.
func (d *Dispatcher) DeleteCol() { d.mutate(engine.NewCommand("deleteCol")) }

// AddHeader adds a header section; colspan spans it across all columns.
func (d *Dispatcher) AddHeader(colspan bool) {
	d.mutate(engine.NewCommand("addHeader", engine.Bool(colspan)))
}

// DeleteTable deletes the enclosing table.
func (d *Dispatcher) DeleteTable() { d.mutate(engine.NewCommand("deleteTable")) }

// BorderTable sets the enclosing table's border mode.
func (d *Dispatcher) BorderTable(b selection.Border) {
	d.mutate(engine.NewCommand("borderTable", engine.Str(b.String())))
}

// History.

// Undo reverts the last edit.
func (d *Dispatcher) Undo() { d.mutate(engine.NewCommand("undo")) }

// Redo re-applies the last undone edit.
func (d *Dispatcher) Redo() { d.mutate(engine.NewCommand("redo")) }
