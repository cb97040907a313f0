// Package completer defines the narrow contract the engine uses to talk
// to a text-generation backend, plus the typed errors every adapter
// reports through.
package completer

import (
	"context"
	"fmt"
)

// TextCompleter is the only interface the engine depends on. Verify is
// called once before a run starts; Complete is called once per
// generation or refinement step.
type TextCompleter interface {
	// Verify reports whether the backend is reachable and its model is
	// usable, without generating text. Called once before a run starts.
	Verify(ctx context.Context) error

	// Complete sends prompt to the backend and returns its raw text
	// response, unmodified.
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrorKind classifies why a completer call failed, so the engine can
// decide whether a failure is fatal to the run or local to one line.
type ErrorKind int

const (
	// KindUnavailable means the backend could not be reached at all.
	KindUnavailable ErrorKind = iota
	// KindModelMissing means the backend answered but the configured
	// model is not present or not loaded.
	KindModelMissing
	// KindTransport means the request failed at the network or HTTP
	// layer after the backend was confirmed reachable.
	KindTransport
	// KindTimeout means the call exceeded its deadline.
	KindTimeout
	// KindMalformed means the backend returned a response this adapter
	// could not parse.
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindModelMissing:
		return "model_missing"
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error wraps an adapter failure with its ErrorKind and the backend
// name that produced it, so logs can tell an Ollama timeout from an
// Anthropic one without parsing strings.
type Error struct {
	Kind    ErrorKind
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s completer: %s: %v", e.Backend, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an *Error for the given backend and kind.
func NewError(backend string, kind ErrorKind, err error) *Error {
	return &Error{Backend: backend, Kind: kind, Err: err}
}
