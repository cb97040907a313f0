package parody

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/heartmarshall/parodyforge/internal/completer/mock"
	"github.com/heartmarshall/parodyforge/internal/config"
	"github.com/heartmarshall/parodyforge/internal/domain"
)

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func scriptedAlwaysValid(text string) *mock.Completer {
	return &mock.Completer{
		VerifyFunc: func(context.Context) error { return nil },
		CompleteFunc: func(_ context.Context, _ string) (string, error) {
			return text, nil
		},
	}
}

func TestGenerate_PreservesBlankLines(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid("a make")
	svc := NewService(noopLogger(), c, config.EngineConfig{RefinementPasses: 2, ContextWindowSize: 8, MaxSyllableDeviation: 2})

	result, err := svc.Generate(context.Background(), GenerateInput{
		Lines: []string{"hi there", "", "hi there"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Lines) != 3 {
		t.Fatalf("len(result.Lines) = %d, want 3", len(result.Lines))
	}
	if result.Lines[1] != "" {
		t.Errorf("blank line position should stay blank, got %q", result.Lines[1])
	}
	if result.Lines[0] == "" || result.Lines[2] == "" {
		t.Errorf("non-blank positions should be generated, got %v", result.Lines)
	}
}

func TestGenerate_CallsCompleterForNonBlankLines(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid("a make")
	svc := NewService(noopLogger(), c, config.EngineConfig{RefinementPasses: 1, ContextWindowSize: 8, MaxSyllableDeviation: 2})

	_, err := svc.Generate(context.Background(), GenerateInput{
		Lines: []string{"hi there"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(c.CompleteCalls()) == 0 {
		t.Fatal("expected at least one Complete call")
	}
}

func TestGenerate_ReportsProgress(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid("a make")
	svc := NewService(noopLogger(), c, config.EngineConfig{RefinementPasses: 1, ContextWindowSize: 8, MaxSyllableDeviation: 2})

	var seen []int
	_, err := svc.Generate(context.Background(), GenerateInput{
		Lines:      []string{"hi there", "hi there"},
		OnProgress: func(index, total int) { seen = append(seen, index) },
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Fatalf("progress callback indices = %v, want [0 1]", seen)
	}
}

func TestGenerate_EmptyInputRejected(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid("a make")
	svc := NewService(noopLogger(), c, config.EngineConfig{})

	_, err := svc.Generate(context.Background(), GenerateInput{
		Lines: []string{"", "   "},
	})
	if !errors.Is(err, domain.ErrEmptyInput) {
		t.Fatalf("Generate() error = %v, want ErrEmptyInput", err)
	}
}

func TestGenerate_CompleterUnavailable(t *testing.T) {
	t.Parallel()

	c := &mock.Completer{
		VerifyFunc: func(context.Context) error { return errors.New("connection refused") },
	}
	svc := NewService(noopLogger(), c, config.EngineConfig{})

	_, err := svc.Generate(context.Background(), GenerateInput{Lines: []string{"hi there"}})
	if !errors.Is(err, domain.ErrCompleterUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrCompleterUnavailable", err)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid("a make")
	svc := NewService(noopLogger(), c, config.EngineConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, GenerateInput{Lines: []string{"hi there"}})
	if !errors.Is(err, domain.ErrCancelled) {
		t.Fatalf("Generate() error = %v, want ErrCancelled", err)
	}
}

func TestGenerate_FallsBackToOriginalOnPersistentMismatch(t *testing.T) {
	t.Parallel()

	// This candidate has a wildly different syllable count and word
	// count than "hi there" and will never match the target pattern,
	// so every refinement pass is a no-op and the final deviation
	// check must fall back to the original line.
	c := scriptedAlwaysValid("this is a much longer unrelated candidate sentence entirely")
	svc := NewService(noopLogger(), c, config.EngineConfig{RefinementPasses: 2, ContextWindowSize: 8, MaxSyllableDeviation: 0})

	result, err := svc.Generate(context.Background(), GenerateInput{Lines: []string{"hi there"}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.Lines[0] != "hi there" {
		t.Fatalf("result.Lines[0] = %q, want fallback to original %q", result.Lines[0], "hi there")
	}
}

func TestGenerate_RhymeSchemeComputed(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid("a make")
	svc := NewService(noopLogger(), c, config.EngineConfig{RefinementPasses: 1, ContextWindowSize: 8, MaxSyllableDeviation: 2})

	result, err := svc.Generate(context.Background(), GenerateInput{
		Lines: []string{"hi there", "hi there"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.RhymeScheme) != 2 {
		t.Fatalf("RhymeScheme = %q, want length 2", result.RhymeScheme)
	}
}
