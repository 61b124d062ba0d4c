package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/VadimPavlov/MarkupEditor/internal/selection"
)

// exec issues cmd and blocks until its completion fires.
func exec(t *testing.T, rt *Runtime, cmd Command) (any, error) {
	t.Helper()
	type res struct {
		value any
		err   error
	}
	ch := make(chan res, 1)
	rt.Exec(cmd, func(value any, err error) {
		ch <- res{value, err}
	})
	select {
	case r := <-ch:
		return r.value, r.err
	case <-time.After(5 * time.Second):
		t.Fatalf("command %s never completed", cmd)
		return nil, nil
	}
}

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	rt, err := NewRuntime()
	if err != nil {
		t.Fatalf("NewRuntime() error: %v", err)
	}
	t.Cleanup(rt.Close)
	return rt
}

func TestRuntime_ScalarResults(t *testing.T) {
	rt := newTestRuntime(t)

	if _, err := exec(t, rt, NewCommand("setHTML", Str("<p>hi</p>"), Bool(false))); err != nil {
		t.Fatalf("setHTML error: %v", err)
	}

	tests := []struct {
		cmd  Command
		want any
	}{
		{NewCommand("toggleBold"), true},
		{NewCommand("toggleBold"), false},
		{NewCommand("getHTML", Bool(false), Bool(false)), "<p>hi</p>"},
		{NewCommand("indent"), float64(1)},
		{NewCommand("undo"), true},
	}
	for _, tt := range tests {
		got, err := exec(t, rt, tt.cmd)
		if err != nil {
			t.Fatalf("%s error: %v", tt.cmd, err)
		}
		if got != tt.want {
			t.Errorf("%s = %v (%T), want %v (%T)", tt.cmd, got, got, tt.want, tt.want)
		}
	}
}

func TestRuntime_EngineErrorStillCompletes(t *testing.T) {
	rt := newTestRuntime(t)

	got, err := exec(t, rt, NewCommand("insertImage", Str("")))
	if err == nil {
		t.Fatal("insertImage('') error = nil, want engine error")
	}
	var scriptErr *ScriptError
	if !errors.As(err, &scriptErr) {
		t.Fatalf("error = %T, want *ScriptError", err)
	}
	if scriptErr.Command != "insertImage" {
		t.Errorf("ScriptError.Command = %q, want %q", scriptErr.Command, "insertImage")
	}
	if got != nil {
		t.Errorf("result = %v, want nil on error", got)
	}

	// The engine must remain usable after a command failure.
	if _, err := exec(t, rt, NewCommand("setHTML", Str("x"), Bool(false))); err != nil {
		t.Errorf("engine unusable after error: %v", err)
	}
}

func TestRuntime_UnknownCommand(t *testing.T) {
	rt := newTestRuntime(t)
	if _, err := exec(t, rt, NewCommand("noSuchOperation")); err == nil {
		t.Error("unknown command error = nil, want error")
	}
}

func TestRuntime_CompletionFIFO(t *testing.T) {
	rt := newTestRuntime(t)

	const n = 50
	var mu sync.Mutex
	var order []int

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		rt.Exec(NewCommand("getSelectionState"), func(any, error) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()

	for i, v := range order {
		if v != i {
			t.Fatalf("completion order[%d] = %d, want %d (order %v)", i, v, i, order[:i+1])
		}
	}
}

func TestRuntime_ExactlyOnceCompletion(t *testing.T) {
	rt := newTestRuntime(t)

	var count atomic.Int32
	done := make(chan struct{})
	rt.Exec(NewCommand("toggleItalic"), func(any, error) {
		count.Add(1)
		close(done)
	})
	<-done
	// Give a wrongly duplicated completion a chance to show up.
	_, _ = exec(t, rt, NewCommand("getSelectionState"))
	if got := count.Load(); got != 1 {
		t.Errorf("completion fired %d times, want 1", got)
	}
}

func TestRuntime_FullQueueFailsFast(t *testing.T) {
	rt, err := NewRuntime(WithQueueSize(1))
	if err != nil {
		t.Fatalf("NewRuntime() error: %v", err)
	}
	defer rt.Close()

	// While the first completion runs, the engine goroutine is parked in
	// it: one chained command fills the queue, the next must be refused
	// immediately instead of wedging the goroutine.
	queued := make(chan error, 1)
	overflow := make(chan error, 1)
	rt.Exec(NewCommand("getSelectionState"), func(any, error) {
		rt.Exec(NewCommand("toggleBold"), func(_ any, err error) { queued <- err })
		rt.Exec(NewCommand("toggleItalic"), func(_ any, err error) { overflow <- err })
	})

	select {
	case err := <-overflow:
		if !errors.Is(err, ErrQueueFull) {
			t.Errorf("overflow err = %v, want ErrQueueFull", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("overflow completion never fired; Exec blocked on a full queue")
	}
	select {
	case err := <-queued:
		if err != nil {
			t.Errorf("queued command err = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("queued command never completed")
	}

	// The dropped command must not poison the channel.
	if _, err := exec(t, rt, NewCommand("getSelectionState")); err != nil {
		t.Errorf("channel unusable after overflow: %v", err)
	}
}

func TestRuntime_ExecAfterClose(t *testing.T) {
	rt, err := NewRuntime()
	if err != nil {
		t.Fatalf("NewRuntime() error: %v", err)
	}
	rt.Close()

	fired := false
	rt.Exec(NewCommand("toggleBold"), func(result any, err error) {
		fired = true
		if !errors.Is(err, ErrChannelClosed) {
			t.Errorf("err = %v, want ErrChannelClosed", err)
		}
		if result != nil {
			t.Errorf("result = %v, want nil", result)
		}
	})
	if !fired {
		t.Error("completion did not fire after close")
	}
}

func TestRuntime_EscapingRoundTrip(t *testing.T) {
	rt := newTestRuntime(t)

	if _, err := exec(t, rt, NewCommand("setHTML", Str(""), Bool(false))); err != nil {
		t.Fatalf("setHTML error: %v", err)
	}

	hostile := "it's a \"test\"\nwith \\ and\ttabs'); deleteTable(); --"
	if _, err := exec(t, rt, NewCommand("pasteText", Str(hostile))); err != nil {
		t.Fatalf("pasteText error: %v", err)
	}

	got, err := exec(t, rt, NewCommand("getHTML", Bool(false), Bool(false)))
	if err != nil {
		t.Fatalf("getHTML error: %v", err)
	}
	if got != hostile {
		t.Errorf("round-trip = %q, want %q", got, hostile)
	}
}

func TestRuntime_SelectionStateDecodes(t *testing.T) {
	rt := newTestRuntime(t)

	if _, err := exec(t, rt, NewCommand("setHTML", Str("hello world"), Bool(false))); err != nil {
		t.Fatalf("setHTML error: %v", err)
	}
	if _, err := exec(t, rt, NewCommand("toggleBold")); err != nil {
		t.Fatalf("toggleBold error: %v", err)
	}
	if _, err := exec(t, rt, NewCommand("setRange", Int(1), Int(5))); err != nil {
		t.Fatalf("setRange error: %v", err)
	}

	raw, err := exec(t, rt, NewCommand("getSelectionState"))
	if err != nil {
		t.Fatalf("getSelectionState error: %v", err)
	}
	payload, ok := raw.(string)
	if !ok {
		t.Fatalf("getSelectionState returned %T, want string", raw)
	}

	st := selection.Decode(payload)
	if !st.Valid {
		t.Fatal("decoded state invalid")
	}
	if st.Selection != "hello" {
		t.Errorf("Selection = %q, want %q", st.Selection, "hello")
	}
	if st.SelRect == nil {
		t.Error("SelRect = nil, want populated for non-empty selection")
	}
	if !st.Format.Bold {
		t.Error("Format.Bold = false, want true")
	}
}

func TestRuntime_SearchWrapsAroundDocument(t *testing.T) {
	rt := newTestRuntime(t)

	_, _ = exec(t, rt, NewCommand("setHTML", Str("one two one"), Bool(false)))

	search := func(activate, wrap bool) bool {
		t.Helper()
		got, err := exec(t, rt, NewCommand("searchFor",
			Str("one"), Str("forward"), Bool(activate), Bool(wrap)))
		if err != nil {
			t.Fatalf("searchFor error: %v", err)
		}
		return got == true
	}

	if !search(true, true) {
		t.Fatal("first hit not found")
	}
	if !search(false, true) {
		t.Fatal("second hit not found")
	}
	// Past the last hit: with wrap the search restarts at the top.
	if !search(false, true) {
		t.Error("search did not wrap past the last hit")
	}

	// Without wrap the exhausted search reports no match.
	if _, err := exec(t, rt, NewCommand("searchFor",
		Str("two"), Str("forward"), Bool(true), Bool(false))); err != nil {
		t.Fatalf("searchFor error: %v", err)
	}
	got, err := exec(t, rt, NewCommand("searchFor",
		Str("two"), Str("forward"), Bool(false), Bool(false)))
	if err != nil {
		t.Fatalf("searchFor error: %v", err)
	}
	if got != false {
		t.Errorf("exhausted non-wrap search = %v, want false", got)
	}
}

func TestRuntime_ModalInputPreservesSelection(t *testing.T) {
	rt := newTestRuntime(t)

	_, _ = exec(t, rt, NewCommand("setHTML", Str("abcdef"), Bool(false)))
	_, _ = exec(t, rt, NewCommand("setRange", Int(2), Int(4)))
	_, _ = exec(t, rt, NewCommand("startModalInput"))
	// Selection is disturbed while the dialog is up.
	_, _ = exec(t, rt, NewCommand("resetSelection"))
	_, _ = exec(t, rt, NewCommand("endModalInput"))

	raw, err := exec(t, rt, NewCommand("getSelectionState"))
	if err != nil {
		t.Fatalf("getSelectionState error: %v", err)
	}
	st := selection.Decode(raw.(string))
	if st.Selection != "bcd" {
		t.Errorf("Selection after modal = %q, want %q", st.Selection, "bcd")
	}
}

func TestRuntime_WithScript(t *testing.T) {
	rt, err := NewRuntime(WithScript(`function ping() return "pong" end`))
	if err != nil {
		t.Fatalf("NewRuntime() error: %v", err)
	}
	defer rt.Close()

	got, err := exec(t, rt, NewCommand("ping"))
	if err != nil {
		t.Fatalf("ping error: %v", err)
	}
	if got != "pong" {
		t.Errorf("ping = %v, want %q", got, "pong")
	}
}

func TestRuntime_BadScript(t *testing.T) {
	if _, err := NewRuntime(WithScript("this is not lua")); err == nil {
		t.Error("NewRuntime with bad script error = nil, want error")
	}
}
