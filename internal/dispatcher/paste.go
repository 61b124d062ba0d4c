package dispatcher

import (
	"encoding/base64"

	"go.uber.org/zap"

	"github.com/VadimPavlov/MarkupEditor/internal/clipboard"
	"github.com/VadimPavlov/MarkupEditor/internal/engine"
)

// Paste routes the classified pasteboard contents to the matching engine
// command. Platform paste events arrive duplicated on some hosts, so a
// per-surface re-entrancy flag guards the operation: the flag is taken
// before the command is issued and released only in its completion, and a
// paste arriving while one is in flight is silently dropped, not queued.
//
// Returns true when a paste command was issued.
func (d *Dispatcher) Paste(c clipboard.Contents) bool {
	kind := clipboard.Classify(c)
	cmd, ok := d.pasteCommand(kind, c)
	if !ok {
		d.log.Debug("nothing pasteable", zap.String("kind", kind.String()))
		return false
	}

	if !d.pasting.CompareAndSwap(false, true) {
		d.log.Debug("re-entrant paste dropped", zap.String("kind", kind.String()))
		return false
	}

	d.conn.Exec(cmd, func(_ any, err error) {
		d.pasting.Store(false)
		if err != nil {
			d.log.Warn("paste failed",
				zap.String("kind", kind.String()),
				zap.Error(err))
			d.errFn(cmd.Name(), err)
		}
		d.RefreshState()
	})
	return true
}

// pasteCommand maps a classification to its engine command.
func (d *Dispatcher) pasteCommand(kind clipboard.Kind, c clipboard.Contents) (engine.Command, bool) {
	switch kind {
	case clipboard.KindLocalImage:
		// The private marker carries the editor's own rich image markup.
		return engine.NewCommand("pasteHTML", engine.Str(c.LocalImage)), true
	case clipboard.KindImage:
		src := "data:image/png;base64," + base64.StdEncoding.EncodeToString(c.Image)
		return engine.NewCommand("insertImage", engine.Str(src), engine.Null()), true
	case clipboard.KindURL:
		return engine.NewCommand("insertLink", engine.Str(c.URL)), true
	case clipboard.KindHTML:
		if d.pastePlain {
			return engine.NewCommand("pasteText", engine.Str(c.Text)), true
		}
		return engine.NewCommand("pasteHTML", engine.Str(c.HTML)), true
	case clipboard.KindRTF:
		// No RTF path into the engine; the text entry is the best carrier.
		return engine.NewCommand("pasteText", engine.Str(c.Text)), true
	case clipboard.KindText:
		return engine.NewCommand("pasteText", engine.Str(c.Text)), true
	default:
		return engine.Command{}, false
	}
}
