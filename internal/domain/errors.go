package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. Each is surfaced to the caller
// per the error taxonomy: completer/input/cancellation failures abort a
// run; refinement and validation issues never reach this layer because
// the engine treats them as no-ops (see internal/service/parody).
var (
	ErrCompleterUnavailable = errors.New("completer unavailable")
	ErrCompleterFailed      = errors.New("completer failed")
	ErrEmptyInput           = errors.New("no non-blank input lines")
	ErrCancelled            = errors.New("cancelled")
	ErrKeywordParseEmpty    = errors.New("keyword generator produced no keywords")
)

// LineError wraps a fatal error with the input line index it occurred at,
// so callers can report "line 7: ..." without the core knowing about
// presentation.
type LineError struct {
	Index int
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Index, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// NewLineError attaches an input line index to a fatal error.
func NewLineError(index int, err error) *LineError {
	return &LineError{Index: index, Err: err}
}
