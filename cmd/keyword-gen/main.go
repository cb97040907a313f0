// Command keyword-gen asks a configured TextCompleter for a themed
// keyword:definition map and writes it to a file consumable by the
// parody command's --keywords flag.
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
)

var (
	subjects   []string
	count      int
	outputPath string
)

func main() {
	root := &cobra.Command{
		Use:   "keyword-gen",
		Short: "Generate a themed keyword:definition map via a TextCompleter",
		RunE:  runKeywordGen,
	}
	root.SilenceUsage = true
	root.Flags().StringSliceVar(&subjects, "subjects", nil, "one or more thematic subjects (required)")
	root.Flags().IntVar(&count, "count", 10, "number of keyword entries to request (1-100)")
	root.Flags().StringVar(&outputPath, "output", "", "path to write the keyword map to (default: stdout)")
	_ = root.MarkFlagRequired("subjects")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "keyword-gen:", err)
		os.Exit(1)
	}
}

func runKeywordGen(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := app.Bootstrap()
	if err != nil {
		return err
	}

	c, err := buildCompleter(cfg)
	if err != nil {
		return fmt.Errorf("build completer: %w", err)
	}

	svc := keyword.NewService(logger, c)
	theme := strings.Join(trimAll(subjects), "; ")
	keywords, err := svc.Generate(cmd.Context(), keyword.GenerateInput{Theme: theme, Count: count})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if len(keywords) == 0 {
		return domain.ErrKeywordParseEmpty
	}

	return writeKeywords(outputPath, keywords)
}

func trimAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
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

func writeKeywords(path string, keywords domain.KeywordMap) error {
	var b strings.Builder
	for _, k := range keywords.SortedKeys() {
		fmt.Fprintf(&b, "%s: %s\n", k, keywords[k])
	}
	if path == "" {
		_, err := fmt.Print(b.String())
		return err
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
