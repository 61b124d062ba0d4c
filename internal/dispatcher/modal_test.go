package dispatcher

import (
	"errors"
	"testing"
)

func TestModal_Lifecycle(t *testing.T) {
	d, conn, _ := newTestDispatcher()

	if got := d.ModalStateNow(); got != ModalIdle {
		t.Fatalf("initial state = %v, want idle", got)
	}

	if err := d.BeginModalInput(); err != nil {
		t.Fatalf("BeginModalInput error: %v", err)
	}
	if got := d.ModalStateNow(); got != ModalPending {
		t.Errorf("state = %v, want pending", got)
	}
	if got := conn.wire()[0]; got != "startModalInput()" {
		t.Errorf("wire = %q, want startModalInput()", got)
	}

	conn.complete(t, 0, true, nil)
	if got := d.ModalStateNow(); got != ModalActive {
		t.Errorf("state = %v, want active", got)
	}

	d.EndModalInput()
	if got := d.ModalStateNow(); got != ModalIdle {
		t.Errorf("state = %v, want idle", got)
	}
	if got := conn.wire()[1]; got != "endModalInput()" {
		t.Errorf("wire = %q, want endModalInput()", got)
	}
}

func TestModal_MutuallyExclusive(t *testing.T) {
	d, conn, _ := newTestDispatcher()

	if err := d.BeginModalInput(); err != nil {
		t.Fatalf("BeginModalInput error: %v", err)
	}
	// While pending.
	if err := d.BeginModalInput(); !errors.Is(err, ErrModalActive) {
		t.Errorf("begin while pending = %v, want ErrModalActive", err)
	}
	// While active.
	conn.complete(t, 0, true, nil)
	if err := d.BeginModalInput(); !errors.Is(err, ErrModalActive) {
		t.Errorf("begin while active = %v, want ErrModalActive", err)
	}
	if got := conn.count(); got != 1 {
		t.Errorf("startModalInput issued %d times, want 1", got)
	}
}

func TestModal_AbnormalDismissal(t *testing.T) {
	d, conn, _ := newTestDispatcher()

	// The dialog dies before the begin completion arrives.
	if err := d.BeginModalInput(); err != nil {
		t.Fatalf("BeginModalInput error: %v", err)
	}
	d.EndModalInput()

	// The late begin completion must not resurrect the bracket.
	conn.complete(t, 0, true, nil)
	if got := d.ModalStateNow(); got != ModalIdle {
		t.Errorf("state = %v, want idle after abnormal dismissal", got)
	}

	// And a fresh dialog can open again.
	if err := d.BeginModalInput(); err != nil {
		t.Errorf("BeginModalInput after dismissal error: %v", err)
	}
}

func TestModal_BeginFailureReturnsToIdle(t *testing.T) {
	d, conn, _ := newTestDispatcher()

	if err := d.BeginModalInput(); err != nil {
		t.Fatalf("BeginModalInput error: %v", err)
	}
	conn.complete(t, 0, nil, errors.New("engine not ready"))

	if got := d.ModalStateNow(); got != ModalIdle {
		t.Errorf("state = %v, want idle after failed begin", got)
	}
}
