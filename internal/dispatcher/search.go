package dispatcher

import "github.com/VadimPavlov/MarkupEditor/internal/engine"

// Search is a long-lived modal mode: once activated, the host routes a
// specific key (typically Enter) to continuations until the mode is
// explicitly deactivated or cancelled.

// SearchActive reports whether search mode is live.
func (d *Dispatcher) SearchActive() bool {
	d.searchMu.Lock()
	defer d.searchMu.Unlock()
	return d.searchActive
}

// Search activates search mode and runs the first search.
func (d *Dispatcher) Search(text string, dir Direction) error {
	if text == "" {
		return ErrEmptySearch
	}
	d.searchMu.Lock()
	d.searchActive = true
	d.searchText = text
	d.searchDir = dir
	d.searchMu.Unlock()

	d.mutate(engine.NewCommand("searchFor",
		engine.Str(text), engine.Str(string(dir)), engine.Bool(true), engine.Bool(d.searchWrap)))
	return nil
}

// SearchNext continues the active search in its direction. The engine's
// continuation is re-invoked directly; the modal bracket is not re-opened.
func (d *Dispatcher) SearchNext() error {
	return d.continueSearch(false)
}

// SearchPrevious continues the active search against its direction.
func (d *Dispatcher) SearchPrevious() error {
	return d.continueSearch(true)
}

func (d *Dispatcher) continueSearch(reverse bool) error {
	d.searchMu.Lock()
	if !d.searchActive {
		d.searchMu.Unlock()
		return ErrSearchInactive
	}
	text, dir := d.searchText, d.searchDir
	d.searchMu.Unlock()

	if reverse {
		if dir == Forward {
			dir = Backward
		} else {
			dir = Forward
		}
	}
	d.mutate(engine.NewCommand("searchFor",
		engine.Str(text), engine.Str(string(dir)), engine.Bool(false), engine.Bool(d.searchWrap)))
	return nil
}

// DeactivateSearch ends search mode, keeping the current selection.
func (d *Dispatcher) DeactivateSearch() {
	d.searchMu.Lock()
	d.searchActive = false
	d.searchText = ""
	d.searchMu.Unlock()

	d.mutate(engine.NewCommand("deactivateSearch"))
}

// CancelSearch ends search mode and restores the pre-search selection.
func (d *Dispatcher) CancelSearch() {
	d.searchMu.Lock()
	d.searchActive = false
	d.searchText = ""
	d.searchMu.Unlock()

	d.mutate(engine.NewCommand("cancelSearch"))
}
