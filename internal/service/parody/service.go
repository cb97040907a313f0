// Package parody implements the per-line generate-then-refine loop that
// turns a source lyric sheet into a parody preserving its syllable
// rhythm, rhyme scheme, and surface punctuation.
package parody

import (
	"log/slog"

	"github.com/heartmarshall/parodyforge/internal/completer"
	"github.com/heartmarshall/parodyforge/internal/config"
)

// Service orchestrates a single parody generation run against one
// TextCompleter backend.
type Service struct {
	completer completer.TextCompleter
	cfg       config.EngineConfig
	log       *slog.Logger
}

// NewService builds a Service. cfg tunes refinement depth, context
// window size, and the accepted syllable deviation.
func NewService(log *slog.Logger, c completer.TextCompleter, cfg config.EngineConfig) *Service {
	return &Service{
		completer: c,
		cfg:       cfg,
		log:       log.With("service", "parody"),
	}
}
