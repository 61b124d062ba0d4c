package registry

import (
	"sync"

	"go.uber.org/zap"

	"github.com/VadimPavlov/MarkupEditor/internal/selection"
)

// Surface is the registry's view of an editor surface.
type Surface interface {
	// Ready reports whether the surface's engine load has completed.
	// Focus requests for a surface that is not ready are ignored.
	Ready() bool
}

// FocusChange describes a completed focus transfer.
type FocusChange struct {
	// EditorID is the surface now holding focus, "" when focus cleared.
	EditorID string

	// Previous is the surface that held focus before, "" if none.
	Previous string
}

// Observer receives focus changes.
type Observer func(FocusChange)

// StateObserver receives the active surface's published selection state.
// The state is a private copy; observers may retain it.
type StateObserver func(editorID string, state *selection.State)

// Subscription is a handle for cancelling an observer.
type Subscription struct {
	id    uint64
	state bool
	reg   *Registry
}

// Unsubscribe removes the observer. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.reg != nil {
		s.reg.unsubscribe(s)
	}
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry's logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// Registry holds the process-wide active-editor identifier, the surfaces
// competing for it, and the active surface's mirrored selection state.
// All methods are safe for concurrent use; the current identifier is
// mutated single-writer under the registry lock.
type Registry struct {
	mu sync.RWMutex

	surfaces map[string]Surface
	current  string

	// active mirrors the focused surface's selection state. It is reset
	// whole from published states, never patched.
	active *selection.State

	focusObs map[uint64]Observer
	stateObs map[uint64]StateObserver
	nextID   uint64

	log *zap.Logger
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		surfaces: make(map[string]Surface),
		active:   &selection.State{},
		focusObs: make(map[uint64]Observer),
		stateObs: make(map[uint64]StateObserver),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register makes a surface known to the registry. Registering does not
// grant focus.
func (r *Registry) Register(id string, s Surface) {
	r.mu.Lock()
	r.surfaces[id] = s
	r.mu.Unlock()
}

// Unregister removes a surface. If it held focus, focus clears and
// observers are notified.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	delete(r.surfaces, id)
	cleared := r.current == id
	if cleared {
		r.current = ""
		r.active.Reset(nil)
	}
	obs := r.focusObservers()
	r.mu.Unlock()

	if cleared {
		for _, fn := range obs {
			fn(FocusChange{EditorID: "", Previous: id})
		}
	}
}

// RequestFocus makes id the active surface. The request is a silent no-op
// (returning false) when the surface is unknown or not yet ready. On
// success, focus observers are notified synchronously on the caller's
// goroutine, exactly once.
func (r *Registry) RequestFocus(id string) bool {
	r.mu.Lock()
	s, ok := r.surfaces[id]
	if !ok || !s.Ready() {
		r.mu.Unlock()
		r.log.Debug("focus request ignored",
			zap.String("editor", id),
			zap.Bool("registered", ok))
		return false
	}
	prev := r.current
	r.current = id
	obs := r.focusObservers()
	r.mu.Unlock()

	r.log.Debug("focus transferred",
		zap.String("editor", id),
		zap.String("previous", prev))
	for _, fn := range obs {
		fn(FocusChange{EditorID: id, Previous: prev})
	}
	return true
}

// CurrentID returns the active surface's identifier, "" if none.
func (r *Registry) CurrentID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// ActiveState returns a copy of the active surface's mirrored state.
func (r *Registry) ActiveState() *selection.State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active.Clone()
}

// PublishState mirrors a surface's selection state into the registry.
// Publications from a surface that is not current are dropped. State
// observers receive a private copy, synchronously.
func (r *Registry) PublishState(id string, st *selection.State) bool {
	r.mu.Lock()
	if id != r.current {
		r.mu.Unlock()
		r.log.Debug("state publication from inactive surface dropped",
			zap.String("editor", id))
		return false
	}
	r.active.Reset(st)
	snapshot := r.active.Clone()
	obs := make([]StateObserver, 0, len(r.stateObs))
	for _, fn := range r.stateObs {
		obs = append(obs, fn)
	}
	r.mu.Unlock()

	for _, fn := range obs {
		fn(id, snapshot.Clone())
	}
	return true
}

// Subscribe registers a focus observer.
func (r *Registry) Subscribe(fn Observer) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.focusObs[r.nextID] = fn
	return &Subscription{id: r.nextID, reg: r}
}

// SubscribeState registers a state observer.
func (r *Registry) SubscribeState(fn StateObserver) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.stateObs[r.nextID] = fn
	return &Subscription{id: r.nextID, state: true, reg: r}
}

func (r *Registry) unsubscribe(s *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.state {
		delete(r.stateObs, s.id)
	} else {
		delete(r.focusObs, s.id)
	}
}

// focusObservers snapshots the focus observer list. Caller holds the lock.
func (r *Registry) focusObservers() []Observer {
	obs := make([]Observer, 0, len(r.focusObs))
	for _, fn := range r.focusObs {
		obs = append(obs, fn)
	}
	return obs
}
