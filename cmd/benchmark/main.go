// Command benchmark runs a full parody generation pass over a lyrics
// file and reports timing and prosody-fidelity statistics. It is a thin
// wrapper over internal/service/parody for exercising the pipeline
// end to end against a chosen backend (or the passthrough mock, so the
// harness itself never requires a live model); it computes no metric
// the core doesn't already expose.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/parodyforge/internal/app"
	"github.com/heartmarshall/parodyforge/internal/completer"
	"github.com/heartmarshall/parodyforge/internal/completer/anthropic"
	"github.com/heartmarshall/parodyforge/internal/completer/mock"
	"github.com/heartmarshall/parodyforge/internal/completer/ollama"
	"github.com/heartmarshall/parodyforge/internal/config"
	"github.com/heartmarshall/parodyforge/internal/domain"
	"github.com/heartmarshall/parodyforge/internal/service/parody"
	"github.com/heartmarshall/parodyforge/internal/syllable"
)

var (
	inputPath string
	runs      int
)

func main() {
	root := &cobra.Command{
		Use:   "benchmark",
		Short: "Time and score a parody run's prosody fidelity against a lyrics file",
		RunE:  runBenchmark,
	}
	root.SilenceUsage = true
	root.Flags().StringVar(&inputPath, "input", "", "path to the source lyrics file (required)")
	root.Flags().IntVar(&runs, "runs", 1, "number of repeated runs to average timing over")
	_ = root.MarkFlagRequired("input")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "benchmark:", err)
		os.Exit(1)
	}
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := app.Bootstrap()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	lines := splitLines(string(raw))

	c, err := buildCompleter(cfg)
	if err != nil {
		return fmt.Errorf("build completer: %w", err)
	}
	svc := parody.NewService(logger, c, cfg.Engine)

	var totalElapsed time.Duration
	var lastResult *parody.Result
	for i := 0; i < runs; i++ {
		start := time.Now()
		result, err := svc.Generate(cmd.Context(), parody.GenerateInput{Lines: lines})
		if err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		totalElapsed += time.Since(start)
		lastResult = result
	}

	avgElapsed := totalElapsed / time.Duration(runs)
	maxDev, matched := scoreFidelity(lines, lastResult.Lines, cfg.Engine.MaxSyllableDeviation)

	fmt.Printf("runs: %d\n", runs)
	fmt.Printf("avg duration: %s\n", avgElapsed)
	fmt.Printf("rhyme scheme: %s\n", lastResult.RhymeScheme)
	fmt.Printf("lines within syllable deviation %d: %d/%d\n", cfg.Engine.MaxSyllableDeviation, matched, len(nonBlankLines(lines)))
	fmt.Printf("max observed syllable deviation: %d\n", maxDev)
	return nil
}

// scoreFidelity compares the original and generated non-blank lines'
// total syllable counts, reporting how many stayed within maxDeviation
// and the largest deviation observed.
func scoreFidelity(original, generated []string, maxDeviation int) (maxDev, matched int) {
	for i, o := range original {
		if domain.IsBlankLine(o) {
			continue
		}
		target := syllable.CountLine(o)
		got := syllable.CountLine(generated[i])
		diff := got - target
		if diff < 0 {
			diff = -diff
		}
		if diff > maxDev {
			maxDev = diff
		}
		if diff <= maxDeviation {
			matched++
		}
	}
	return maxDev, matched
}

func nonBlankLines(lines []string) []string {
	var out []string
	for _, l := range lines {
		if !domain.IsBlankLine(l) {
			out = append(out, l)
		}
	}
	return out
}

func splitLines(raw string) []string {
	rawLines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	lines := make([]string, len(rawLines))
	for i, l := range rawLines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

func buildCompleter(cfg *config.Config) (completer.TextCompleter, error) {
	switch cfg.Completer.Backend {
	case "ollama":
		return ollama.New(cfg.Ollama.BaseURL, cfg.Ollama.Model,
			cfg.Completer.Temperature, cfg.Completer.TopP, cfg.Completer.NumPredict, nil), nil
	case "anthropic":
		return anthropic.New(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens), nil
	case "mock":
		return mock.NewPassthrough(), nil
	default:
		return nil, fmt.Errorf("unknown completer backend %q", cfg.Completer.Backend)
	}
}
