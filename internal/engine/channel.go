package engine

import (
	"sync"

	"go.uber.org/zap"
)

// CompletionFunc receives a command's single resolution: the engine's
// scalar result or an error. Exactly one of the two is meaningful; on
// error the result is always nil.
type CompletionFunc func(result any, err error)

// call pairs a command with its one-shot completion.
type call struct {
	cmd Command
	fn  CompletionFunc
}

// Channel is the asynchronous request/response transport to the document
// engine. Commands from any goroutine funnel through a single queue that
// the engine goroutine consumes in FIFO order, so completions for calls
// from one origin arrive in issue order.
type Channel struct {
	queue chan *call
	done  chan struct{}

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once

	log *zap.Logger
}

func newChannel(queueSize int, log *zap.Logger) *Channel {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Channel{
		queue: make(chan *call, queueSize),
		done:  make(chan struct{}),
		log:   log,
	}
}

// Exec enqueues cmd for execution and returns without blocking, even
// from a completion running on the engine goroutine. fn is invoked
// exactly once, on the engine goroutine, with the result or an error.
// When the queue is full fn fires synchronously with ErrQueueFull and
// the command is dropped; after the channel closes it fires with
// ErrChannelClosed. A nil fn discards the result.
func (c *Channel) Exec(cmd Command, fn CompletionFunc) {
	if fn == nil {
		fn = func(any, error) {}
	}
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		c.log.Debug("command after close", zap.String("command", cmd.Name()))
		fn(nil, ErrChannelClosed)
		return
	}
	full := false
	select {
	case c.queue <- &call{cmd: cmd, fn: fn}:
	default:
		full = true
	}
	c.mu.RUnlock()
	if full {
		c.log.Warn("command queue full", zap.String("command", cmd.Name()))
		fn(nil, ErrQueueFull)
	}
}

// close marks the channel closed. Every enqueue holds the read lock, so
// once close returns no further call can reach the queue; the engine
// goroutine's drain then resolves everything left with ErrChannelClosed.
func (c *Channel) close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		close(c.done)
	})
}
