package dispatcher

import "github.com/VadimPavlov/MarkupEditor/internal/engine"

// Modal input brackets a native dialog (link, image, table insertion,
// search panel) so the engine preserves the pre-dialog selection across
// the interruption. The state machine is Idle -> Pending -> Active -> Idle.

// ModalStateNow returns the current bracketing state.
func (d *Dispatcher) ModalStateNow() ModalState {
	d.modalMu.Lock()
	defer d.modalMu.Unlock()
	return d.modal
}

// BeginModalInput opens the bracket before a dialog is shown. Dialogs are
// mutually exclusive: a begin while another bracket is pending or active
// returns ErrModalActive and issues nothing.
func (d *Dispatcher) BeginModalInput() error {
	d.modalMu.Lock()
	if d.modal != ModalIdle {
		d.modalMu.Unlock()
		return ErrModalActive
	}
	d.modal = ModalPending
	d.modalMu.Unlock()

	d.conn.Exec(engine.NewCommand("startModalInput"), func(_ any, err error) {
		d.modalMu.Lock()
		defer d.modalMu.Unlock()
		// Only advance a bracket that is still pending; an intervening
		// EndModalInput wins.
		if d.modal != ModalPending {
			return
		}
		if err != nil {
			d.modal = ModalIdle
			return
		}
		d.modal = ModalActive
	})
	return nil
}

// EndModalInput closes the bracket after the dialog goes away. It always
// issues endModalInput() and returns the state machine to Idle, abnormal
// dismissal included, so the engine never stays stuck preserving a stale
// selection.
func (d *Dispatcher) EndModalInput() {
	d.modalMu.Lock()
	d.modal = ModalIdle
	d.modalMu.Unlock()

	d.conn.Exec(engine.NewCommand("endModalInput"), func(_ any, err error) {
		if err != nil {
			d.log.Warn("endModalInput failed; selection may be stale")
		}
		d.RefreshState()
	})
}
