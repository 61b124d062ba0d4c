package engine

import (
	"errors"
	"fmt"
)

// Engine errors.
var (
	// ErrChannelClosed indicates a command was issued after the channel
	// shut down. The completion still fires, carrying this error.
	ErrChannelClosed = errors.New("engine: channel is closed")

	// ErrQueueFull indicates the command queue was at capacity. The
	// command is dropped and its completion fires with this error
	// instead of blocking the caller.
	ErrQueueFull = errors.New("engine: command queue is full")
)

// ScriptError reports a failure inside the engine script while evaluating
// a command. It is recoverable: the completion fires with a nil result and
// the engine remains usable.
type ScriptError struct {
	// Command is the operation name that failed.
	Command string

	// Err is the underlying engine-reported error.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("engine: %s failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
