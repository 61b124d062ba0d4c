package engine

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

//go:embed script/document.lua
var documentScript string

// Option configures a Runtime.
type Option func(*options)

type options struct {
	queueSize int
	log       *zap.Logger
	script    string
}

// WithQueueSize sets the command queue depth.
func WithQueueSize(n int) Option {
	return func(o *options) { o.queueSize = n }
}

// WithLogger sets the runtime's logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithScript replaces the embedded engine script. Used by tests and by
// hosts shipping a customized engine.
func WithScript(src string) Option {
	return func(o *options) { o.script = src }
}

// Runtime hosts one document engine: a Lua state owned by a single
// goroutine that consumes the command channel. One Runtime backs one
// editor surface.
type Runtime struct {
	ch  *Channel
	l   *lua.LState
	log *zap.Logger
	wg  sync.WaitGroup
}

// NewRuntime loads the engine script into a fresh Lua state and starts the
// engine goroutine. The returned runtime accepts commands immediately.
func NewRuntime(opts ...Option) (*Runtime, error) {
	o := options{
		log:    zap.NewNop(),
		script: documentScript,
	}
	for _, opt := range opts {
		opt(&o)
	}

	l := lua.NewState()
	if err := l.DoString(o.script); err != nil {
		l.Close()
		return nil, fmt.Errorf("engine: loading script: %w", err)
	}

	rt := &Runtime{
		ch:  newChannel(o.queueSize, o.log),
		l:   l,
		log: o.log,
	}
	rt.wg.Add(1)
	go rt.loop()
	return rt, nil
}

// Channel returns the runtime's command channel.
func (rt *Runtime) Channel() *Channel {
	return rt.ch
}

// Exec is shorthand for Channel().Exec.
func (rt *Runtime) Exec(cmd Command, fn CompletionFunc) {
	rt.ch.Exec(cmd, fn)
}

// Close shuts the runtime down. Pending commands resolve with
// ErrChannelClosed; Close blocks until the engine goroutine exits and the
// Lua state is released.
func (rt *Runtime) Close() {
	rt.ch.close()
	rt.wg.Wait()
}

// loop owns the Lua state. All evaluation happens here, giving commands
// FIFO execution and completion order.
func (rt *Runtime) loop() {
	defer rt.wg.Done()
	defer rt.l.Close()

	for {
		select {
		case <-rt.ch.done:
			rt.drain()
			return
		case cl := <-rt.ch.queue:
			rt.run(cl)
		}
	}
}

// drain resolves queued calls after shutdown so no completion is lost.
func (rt *Runtime) drain() {
	for {
		select {
		case cl := <-rt.ch.queue:
			cl.fn(nil, ErrChannelClosed)
		default:
			return
		}
	}
}

// run evaluates one call and fires its completion exactly once. Failures
// are absorbed: the error is logged and handed to the completion with a
// nil result, never propagated further.
func (rt *Runtime) run(cl *call) {
	result, err := rt.eval(cl.cmd)
	if err != nil {
		rt.log.Warn("engine command failed",
			zap.String("command", cl.cmd.Name()),
			zap.Error(err))
		cl.fn(nil, &ScriptError{Command: cl.cmd.Name(), Err: err})
		return
	}
	cl.fn(result, nil)
}

// eval runs a command as an engine expression and converts its first
// return value. Panics inside the Lua runtime are recovered into errors.
func (rt *Runtime) eval(cmd Command) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = v
			case string:
				err = errors.New(v)
			default:
				err = fmt.Errorf("engine panic: %v", r)
			}
		}
	}()

	top := rt.l.GetTop()
	if doErr := rt.l.DoString("return " + cmd.String()); doErr != nil {
		return nil, doErr
	}
	var lv lua.LValue = lua.LNil
	if rt.l.GetTop() > top {
		lv = rt.l.Get(top + 1)
	}
	rt.l.SetTop(top)
	return toGoValue(lv), nil
}
