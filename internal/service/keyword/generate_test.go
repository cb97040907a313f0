package keyword

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/heartmarshall/parodyforge/internal/completer/mock"
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

func TestGenerate_ParsesKeywordDefinitionLines(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid("sun: the bright summer sky\nhighway: the open road ahead\n")
	svc := NewService(noopLogger(), c)

	got, err := svc.Generate(context.Background(), GenerateInput{Theme: "a summer road trip", Count: 2})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := domain.KeywordMap{
		"sun":     "the bright summer sky",
		"highway": "the open road ahead",
	}
	if len(got) != len(want) {
		t.Fatalf("Generate() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Generate()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestGenerate_SkipsMalformedLines(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid("sun: the bright summer sky\nno colon here\nempty: \n: no key\n")
	svc := NewService(noopLogger(), c)

	got, err := svc.Generate(context.Background(), GenerateInput{Theme: "a summer road trip", Count: 3})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Generate() = %v, want exactly one entry", got)
	}
	if got["sun"] != "the bright summer sky" {
		t.Errorf("Generate()[\"sun\"] = %q, want %q", got["sun"], "the bright summer sky")
	}
}

func TestGenerate_StripsSurroundingQuotes(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid(`"sun": "the bright summer sky"` + "\n")
	svc := NewService(noopLogger(), c)

	got, err := svc.Generate(context.Background(), GenerateInput{Theme: "a summer road trip", Count: 1})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got["sun"] != "the bright summer sky" {
		t.Errorf("Generate()[\"sun\"] = %q, want %q", got["sun"], "the bright summer sky")
	}
}

func TestGenerate_LaterDuplicateWins(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid("sun: first definition\nsun: second definition\n")
	svc := NewService(noopLogger(), c)

	got, err := svc.Generate(context.Background(), GenerateInput{Theme: "a summer road trip", Count: 1})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got["sun"] != "second definition" {
		t.Errorf("Generate()[\"sun\"] = %q, want %q", got["sun"], "second definition")
	}
}

func TestGenerate_EmptyResponseYieldsEmptyMapNoError(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid("")
	svc := NewService(noopLogger(), c)

	got, err := svc.Generate(context.Background(), GenerateInput{Theme: "a summer road trip", Count: 3})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Generate() = %v, want empty map", got)
	}
}

func TestGenerate_InvalidInputRejected(t *testing.T) {
	t.Parallel()

	c := scriptedAlwaysValid("sun: the bright summer sky\n")
	svc := NewService(noopLogger(), c)

	_, err := svc.Generate(context.Background(), GenerateInput{Theme: "", Count: 3})
	if err == nil {
		t.Fatal("Generate() error = nil, want error for empty theme")
	}
}

func TestGenerate_CompleterUnavailable(t *testing.T) {
	t.Parallel()

	c := &mock.Completer{
		VerifyFunc: func(context.Context) error { return errors.New("connection refused") },
	}
	svc := NewService(noopLogger(), c)

	_, err := svc.Generate(context.Background(), GenerateInput{Theme: "a summer road trip", Count: 3})
	if !errors.Is(err, domain.ErrCompleterUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrCompleterUnavailable", err)
	}
}
