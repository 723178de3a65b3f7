package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"firestige.xyz/cigiscope/internal/config"
)

// Init installs the global slog logger per configuration. Stdout is
// always written; a rotating file and a Loki push stream are added
// when enabled. Call Close before exit so batched outputs flush.
func Init(cfg config.LogConfig) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	out, closers, err := buildOutputs(cfg.Outputs)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		closeAll(closers)
		return fmt.Errorf("unsupported log format: %s (must be json or text)", cfg.Format)
	}

	slog.SetDefault(slog.New(handler))

	outputs.mu.Lock()
	prev := outputs.closers
	outputs.closers = closers
	outputs.mu.Unlock()
	closeAll(prev)

	return nil
}

// Close flushes and releases the configured log outputs.
func Close() error {
	outputs.mu.Lock()
	closers := outputs.closers
	outputs.closers = nil
	outputs.mu.Unlock()
	return closeAll(closers)
}

var outputs struct {
	mu      sync.Mutex
	closers []io.Closer
}

// buildOutputs assembles the destination writer and the closers that
// must run at shutdown.
func buildOutputs(cfg config.LogOutputsConfig) (io.Writer, []io.Closer, error) {
	writers := []io.Writer{os.Stdout}
	var closers []io.Closer

	if cfg.File.Enabled {
		if cfg.File.Path == "" {
			return nil, nil, fmt.Errorf("file output requires 'path' field")
		}
		rot := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.Rotation.MaxSizeMB,
			MaxBackups: cfg.File.Rotation.MaxBackups,
			MaxAge:     cfg.File.Rotation.MaxAgeDays,
			Compress:   cfg.File.Rotation.Compress,
		}
		writers = append(writers, rot)
		closers = append(closers, rot)
	}

	if cfg.Loki.Enabled {
		if cfg.Loki.Endpoint == "" {
			closeAll(closers)
			return nil, nil, fmt.Errorf("loki output requires 'endpoint' field")
		}
		lw, err := NewLokiWriter(LokiConfig{
			Endpoint:      cfg.Loki.Endpoint,
			Labels:        cfg.Loki.Labels,
			BatchSize:     cfg.Loki.BatchSize,
			FlushInterval: cfg.Loki.BatchTimeout,
		})
		if err != nil {
			closeAll(closers)
			return nil, nil, fmt.Errorf("failed to create loki output: %w", err)
		}
		writers = append(writers, lw)
		closers = append(closers, lw)
	}

	if len(writers) == 1 {
		return writers[0], nil, nil
	}
	return io.MultiWriter(writers...), closers, nil
}

func closeAll(closers []io.Closer) error {
	var firstErr error
	for _, c := range closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// parseLevel converts a config string to a slog.Level.
func parseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level: %s", levelStr)
	}
}
