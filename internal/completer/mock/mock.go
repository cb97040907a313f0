// Package mock provides a deterministic, moq-style TextCompleter for
// tests that exercise the engine without a live backend.
package mock

import (
	"context"
	"regexp"
	"sync"

	"github.com/heartmarshall/parodyforge/internal/completer"
)

var _ completer.TextCompleter = &Completer{}

// Completer is a hand-rolled mock: VerifyFunc and CompleteFunc stand in
// for a real backend, and every call is recorded for assertions.
type Completer struct {
	VerifyFunc   func(ctx context.Context) error
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	calls struct {
		Verify   []struct{}
		Complete []struct{ Prompt string }
	}
	lockVerify   sync.RWMutex
	lockComplete sync.RWMutex
}

func (m *Completer) Verify(ctx context.Context) error {
	if m.VerifyFunc == nil {
		panic("mock.Completer.VerifyFunc: method is nil but Verify was just called")
	}
	m.lockVerify.Lock()
	m.calls.Verify = append(m.calls.Verify, struct{}{})
	m.lockVerify.Unlock()
	return m.VerifyFunc(ctx)
}

func (m *Completer) VerifyCalls() []struct{} {
	m.lockVerify.RLock()
	defer m.lockVerify.RUnlock()
	return m.calls.Verify
}

func (m *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if m.CompleteFunc == nil {
		panic("mock.Completer.CompleteFunc: method is nil but Complete was just called")
	}
	callInfo := struct{ Prompt string }{Prompt: prompt}
	m.lockComplete.Lock()
	m.calls.Complete = append(m.calls.Complete, callInfo)
	m.lockComplete.Unlock()
	return m.CompleteFunc(ctx, prompt)
}

func (m *Completer) CompleteCalls() []struct{ Prompt string } {
	m.lockComplete.RLock()
	defer m.lockComplete.RUnlock()
	return m.calls.Complete
}

// NewScripted builds a Completer whose Verify always succeeds and whose
// Complete looks prompt up in responses verbatim, panicking on a miss so
// a test immediately sees which prompt it failed to anticipate.
func NewScripted(responses map[string]string) *Completer {
	return &Completer{
		VerifyFunc: func(context.Context) error { return nil },
		CompleteFunc: func(_ context.Context, prompt string) (string, error) {
			resp, ok := responses[prompt]
			if !ok {
				panic("mock.Completer: unscripted prompt: " + prompt)
			}
			return resp, nil
		},
	}
}

var quotedText = regexp.MustCompile(`(?:Candidate|Original line): "((?:[^"\\]|\\.)*)"`)

// NewPassthrough builds a Completer with no backend at all: Verify
// always succeeds, and Complete echoes back whatever candidate or
// original line the prompt quotes, unrefined. It exists so the CLI
// commands can be exercised end to end without a live Ollama or
// Anthropic backend configured.
func NewPassthrough() *Completer {
	return &Completer{
		VerifyFunc: func(context.Context) error { return nil },
		CompleteFunc: func(_ context.Context, prompt string) (string, error) {
			if m := quotedText.FindStringSubmatch(prompt); m != nil {
				return m[1], nil
			}
			return prompt, nil
		},
	}
}
