package app

import (
	"log/slog"

	"github.com/heartmarshall/parodyforge/internal/config"
)

// Bootstrap loads configuration and initializes the default logger, the
// shared first step of every cmd/* entrypoint. It logs one startup line
// recording the build version and resolved log level before returning
// control to the caller.
func Bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	return cfg, logger, nil
}
