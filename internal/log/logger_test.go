package log

import (
	"log/slog"
	"path/filepath"
	"testing"

	"firestige.xyz/cigiscope/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"DEBUG":   slog.LevelDebug,
	}
	for in, want := range cases {
		got, err := parseLevel(in)
		if err != nil {
			t.Fatalf("parseLevel(%q) failed: %v", in, err)
		}
		if got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := parseLevel("loud"); err == nil {
		t.Error("Expected error for unknown level, got nil")
	}
}

func TestInitRejectsBadConfig(t *testing.T) {
	err := Init(config.LogConfig{Level: "loud", Format: "text"})
	if err == nil {
		t.Error("Expected error for invalid level, got nil")
	}

	err = Init(config.LogConfig{Level: "info", Format: "xml"})
	if err == nil {
		t.Error("Expected error for invalid format, got nil")
	}
}

func TestInitWithFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	cfg := config.LogConfig{
		Level:  "info",
		Format: "json",
		Outputs: config.LogOutputsConfig{
			File: config.FileOutputConfig{
				Enabled: true,
				Path:    path,
				Rotation: config.RotationConfig{
					MaxSizeMB: 1,
				},
			},
		},
	}
	if err := Init(cfg); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	slog.Info("test entry")
	if err := Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestBuildOutputsRequiresFilePath(t *testing.T) {
	_, _, err := buildOutputs(config.LogOutputsConfig{
		File: config.FileOutputConfig{Enabled: true},
	})
	if err == nil {
		t.Error("Expected error for empty file path, got nil")
	}

	_, _, err = buildOutputs(config.LogOutputsConfig{
		Loki: config.LokiOutputConfig{Enabled: true},
	})
	if err == nil {
		t.Error("Expected error for empty loki endpoint, got nil")
	}
}

func TestBuildOutputsStdoutOnly(t *testing.T) {
	w, closers, err := buildOutputs(config.LogOutputsConfig{})
	if err != nil {
		t.Fatalf("buildOutputs failed: %v", err)
	}
	if w == nil {
		t.Fatal("expected a writer")
	}
	if len(closers) != 0 {
		t.Errorf("stdout-only output should need no closers, got %d", len(closers))
	}
}
