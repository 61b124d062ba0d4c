package editor

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VadimPavlov/MarkupEditor/internal/clipboard"
	"github.com/VadimPavlov/MarkupEditor/internal/config"
	"github.com/VadimPavlov/MarkupEditor/internal/dispatcher"
	"github.com/VadimPavlov/MarkupEditor/internal/engine"
	"github.com/VadimPavlov/MarkupEditor/internal/registry"
	"github.com/VadimPavlov/MarkupEditor/internal/selection"
)

// Option configures an Editor.
type Option func(*settings)

type settings struct {
	log    *zap.Logger
	report ReportFunc
	engine []engine.Option
}

// WithLogger sets the editor's logger, shared with its runtime and
// dispatcher.
func WithLogger(log *zap.Logger) Option {
	return func(s *settings) { s.log = log }
}

// WithReportFunc installs the host's user-facing error callback.
func WithReportFunc(fn ReportFunc) Option {
	return func(s *settings) { s.report = fn }
}

// WithEngineOptions forwards options to the surface's engine runtime.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(s *settings) { s.engine = append(s.engine, opts...) }
}

// Editor is one editing surface. It owns its engine runtime and selection
// state, registers itself with the shared registry, and exposes the
// toolbar dispatcher.
type Editor struct {
	id  string
	rt  *engine.Runtime
	reg *registry.Registry
	cfg config.Config
	log *zap.Logger

	disp   *dispatcher.Dispatcher
	report ReportFunc

	mu    sync.RWMutex
	state selection.State

	ready    atomic.Bool
	focusSub *registry.Subscription
}

// New creates a surface and registers it with reg. The surface is not
// ready until Load completes.
func New(reg *registry.Registry, cfg config.Config, opts ...Option) (*Editor, error) {
	s := settings{
		log:    zap.NewNop(),
		report: func(Report) {},
	}
	for _, opt := range opts {
		opt(&s)
	}

	rt, err := engine.NewRuntime(append([]engine.Option{engine.WithLogger(s.log)}, s.engine...)...)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		id:     uuid.NewString(),
		rt:     rt,
		reg:    reg,
		cfg:    cfg,
		log:    s.log,
		report: s.report,
	}
	e.disp = dispatcher.New(rt.Channel(), e.applyState,
		dispatcher.WithLogger(s.log),
		dispatcher.WithPasteAsPlainText(cfg.PasteAsPlainText),
		dispatcher.WithSearchWrap(cfg.SearchWrap),
		dispatcher.WithErrorFunc(e.reportCommand),
	)

	reg.Register(e.id, e)
	e.focusSub = reg.Subscribe(e.onFocusChange)
	return e, nil
}

// ID returns the surface identifier.
func (e *Editor) ID() string { return e.id }

// Ready implements registry.Surface: true once the load chain completed.
func (e *Editor) Ready() bool { return e.ready.Load() }

// Dispatcher returns the surface's toolbar dispatcher.
func (e *Editor) Dispatcher() *dispatcher.Dispatcher { return e.disp }

// Load sets the document contents. The sequence is chained through
// completions so the engine sees it in order: placeholder, then HTML,
// then the surface turns ready and queries its first selection state.
// fn, if non-nil, fires once with the chain's outcome.
func (e *Editor) Load(html string, fn func(error)) {
	if fn == nil {
		fn = func(error) {}
	}
	conn := e.rt.Channel()
	conn.Exec(engine.NewCommand("setPlaceholder", engine.Str(e.cfg.Placeholder)),
		func(_ any, err error) {
			if err != nil {
				e.failLoad(err, fn)
				return
			}
			conn.Exec(engine.NewCommand("setHTML", engine.Str(html), engine.Bool(e.cfg.SelectAfterLoad)),
				func(_ any, err error) {
					if err != nil {
						e.failLoad(err, fn)
						return
					}
					e.ready.Store(true)
					e.disp.RefreshState()
					fn(nil)
				})
		})
}

func (e *Editor) failLoad(err error, fn func(error)) {
	e.log.Warn("document load failed", zap.Error(err))
	e.report(Report{
		Code:    CodeLoad,
		Message: "document failed to load",
		Info:    map[string]string{"error": err.Error()},
		Alert:   true,
	})
	fn(err)
}

// Focus asks the registry to make this surface the active one. Before the
// load chain completes this is a silent no-op returning false; the host
// may retry once Ready.
func (e *Editor) Focus() bool {
	return e.reg.RequestFocus(e.id)
}

// SelectionState returns a copy of the surface's current state.
func (e *Editor) SelectionState() *selection.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Clone()
}

// Paste reads the pasteboard, classifies it, and routes it through the
// dispatcher's guarded paste path. Read failures surface as a Report.
func (e *Editor) Paste(pb clipboard.Pasteboard) {
	contents, err := pb.Read()
	if err != nil {
		e.log.Warn("pasteboard read failed", zap.Error(err))
		e.report(Report{
			Code:    CodeClipboard,
			Message: "could not read the pasteboard",
			Info:    map[string]string{"error": err.Error()},
			Alert:   true,
		})
		return
	}
	e.disp.Paste(contents)
}

// HTML fetches the document contents. fn fires once with the HTML or an
// error.
func (e *Editor) HTML(pretty, clean bool, fn func(string, error)) {
	e.rt.Exec(engine.NewCommand("getHTML", engine.Bool(pretty), engine.Bool(clean)),
		func(result any, err error) {
			html, _ := result.(string)
			fn(html, err)
		})
}

// SetRange selects the document span [start, end] and refreshes state.
func (e *Editor) SetRange(start, end int) {
	e.rt.Exec(engine.NewCommand("setRange", engine.Int(start), engine.Int(end)),
		func(_ any, err error) {
			if err != nil {
				e.log.Warn("setRange failed", zap.Error(err))
			}
			e.disp.RefreshState()
		})
}

// ResetSelection collapses the selection to a caret and refreshes state.
func (e *Editor) ResetSelection() {
	e.rt.Exec(engine.NewCommand("resetSelection"), func(_ any, err error) {
		if err != nil {
			e.log.Warn("resetSelection failed", zap.Error(err))
		}
		e.disp.RefreshState()
	})
}

// Close unregisters the surface and shuts its engine down. Pending
// commands resolve with engine.ErrChannelClosed.
func (e *Editor) Close() {
	e.ready.Store(false)
	if e.focusSub != nil {
		e.focusSub.Unsubscribe()
	}
	e.reg.Unregister(e.id)
	e.rt.Close()
}

// applyState is the dispatcher's sink: reset the surface state whole and
// publish it. The registry drops publications when this surface is not
// the active one.
func (e *Editor) applyState(st *selection.State) {
	e.mu.Lock()
	e.state.Reset(st)
	e.mu.Unlock()
	e.reg.PublishState(e.id, st)
}

// onFocusChange re-acquires state when this surface gains focus. The
// focus notification deliberately carries no state; querying here is what
// keeps the active-state mirror fresh.
func (e *Editor) onFocusChange(c registry.FocusChange) {
	if c.EditorID != e.id {
		return
	}
	e.disp.RefreshState()
}

// reportCommand converts an engine command failure into a user-facing
// Report. Only user-initiated inserts advise an alert; background
// failures stay in the log.
func (e *Editor) reportCommand(command string, err error) {
	e.report(Report{
		Code:    CodeCommand,
		Message: command + " failed",
		Info:    map[string]string{"error": err.Error()},
		Alert:   alertCommands[command],
	})
}
