// Command parody reads a lyrics file and an optional keywords file and
// writes a prosody-preserving thematic parody. It is a thin wrapper
// around internal/service/parody: no line parsing, prompt construction,
// or refinement logic lives here — only enough glue to prove the core
// is callable from a file in, file out shape.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/parodyforge/internal/app"
	"github.com/heartmarshall/parodyforge/internal/completer"
	"github.com/heartmarshall/parodyforge/internal/completer/anthropic"
	"github.com/heartmarshall/parodyforge/internal/completer/mock"
	"github.com/heartmarshall/parodyforge/internal/completer/ollama"
	"github.com/heartmarshall/parodyforge/internal/config"
	"github.com/heartmarshall/parodyforge/internal/domain"
	"github.com/heartmarshall/parodyforge/internal/service/keyword"
	"github.com/heartmarshall/parodyforge/internal/service/parody"
)

var (
	inputPath    string
	keywordsPath string
	outputPath   string
	verbose      bool
)

func main() {
	root := &cobra.Command{
		Use:   "parody",
		Short: "Generate a prosody-preserving thematic parody of a lyrics file",
		RunE:  runParody,
	}
	root.SilenceUsage = true
	root.Flags().StringVar(&inputPath, "input", "", "path to the source lyrics file (required)")
	root.Flags().StringVar(&keywordsPath, "keywords", "", "path to a keyword:definition file (optional)")
	root.Flags().StringVar(&outputPath, "output", "", "path to write the parody to (default: stdout)")
	root.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	_ = root.MarkFlagRequired("input")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "parody:", err)
		os.Exit(1)
	}
}

func runParody(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := app.Bootstrap()
	if err != nil {
		return err
	}
	if verbose {
		logger = app.NewLogger(config.LogConfig{Level: "debug", Format: cfg.Log.Format})
	}

	lines, err := readLines(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	keywords := domain.KeywordMap{}
	if keywordsPath != "" {
		raw, err := os.ReadFile(keywordsPath)
		if err != nil {
			return fmt.Errorf("read keywords: %w", err)
		}
		keywords = keyword.ParseResponse(string(raw))
	}

	c, err := buildCompleter(cfg)
	if err != nil {
		return fmt.Errorf("build completer: %w", err)
	}

	svc := parody.NewService(logger, c, cfg.Engine)
	result, err := svc.Generate(cmd.Context(), parody.GenerateInput{
		Lines:    lines,
		Keywords: keywords,
		OnProgress: func(index, total int) {
			logger.Debug("line committed", "index", index+1, "total", total)
		},
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	logger.Info("parody complete", "rhyme_scheme", result.RhymeScheme, "run_id", result.RunID.String())
	return writeLines(outputPath, result.Lines)
}

// buildCompleter selects the configured TextCompleter backend. The
// "mock" backend wires a prompt-echoing passthrough so the CLI can be
// exercised end to end without a live Ollama or Anthropic backend.
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

// readLines ingests a UTF-8 lyrics file per §6.2: one logical line per
// source line, blank lines preserved, leading/trailing whitespace
// trimmed on ingest.
func readLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rawLines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	lines := make([]string, len(rawLines))
	for i, l := range rawLines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines, nil
}

// writeLines emits one parody line per input line, "\n"-separated, per
// §6.3. An empty path writes to stdout.
func writeLines(path string, lines []string) error {
	out := strings.Join(lines, "\n")
	if path == "" {
		_, err := fmt.Println(out)
		return err
	}
	return os.WriteFile(path, []byte(out+"\n"), 0o644)
}
