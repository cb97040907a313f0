package app

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/parodyforge/internal/config"
	"github.com/heartmarshall/parodyforge/pkg/ctxutil"
)

// NewLogger creates a *slog.Logger based on the provided LogConfig
// and sets it as the default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable output with source info (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Output is always os.Stderr.
//
// The returned logger's handler is run-id aware: any InfoContext/
// WarnContext/etc. call carrying a context tagged by ctxutil.WithRunID
// gets a "run_id" attribute attached automatically, the way the
// teacher's HTTP middleware attaches request_id/user_id — except here
// the attribute is pulled out by the handler itself rather than read
// back out at each log call site.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(runIDHandler{handler})
	slog.SetDefault(logger)

	return logger
}

// runIDHandler wraps a slog.Handler and injects the run ID carried on
// the record's context, if any, as a "run_id" attribute.
type runIDHandler struct {
	slog.Handler
}

func (h runIDHandler) Handle(ctx context.Context, record slog.Record) error {
	if runID, ok := ctxutil.RunIDFromCtx(ctx); ok {
		record.AddAttrs(slog.String("run_id", runID.String()))
	}
	return h.Handler.Handle(ctx, record)
}

func (h runIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return runIDHandler{h.Handler.WithAttrs(attrs)}
}

func (h runIDHandler) WithGroup(name string) slog.Handler {
	return runIDHandler{h.Handler.WithGroup(name)}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
