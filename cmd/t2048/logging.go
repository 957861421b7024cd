package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/telemetry"
)

// newLogger builds the process logger. Logs go to cfg.File when set and to
// fallback otherwise. The returned close func releases the file.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	out := fallback
	closer := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Prefix:          "t2048",
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return logger, closer, nil
}

// startTelemetry sets up tracing and returns a shutdown func that logs
// instead of failing.
func startTelemetry(ctx context.Context, cfg config.TelemetryConfig, logger *log.Logger) (func(), error) {
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:     cfg.Enabled,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}
	if cfg.Enabled {
		logger.Info("telemetry enabled", "service", cfg.ServiceName)
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Warn("telemetry shutdown", "err", err)
		}
	}, nil
}
