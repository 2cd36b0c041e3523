package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/finroi/internal/config"
)

func TestLoadConfigForSaveLogsUnreadableConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "finroi"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(config.Path(), []byte("[general\nformat = "), 0o600); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	cfg := loadConfigForSave()
	if cfg != config.DefaultConfig() {
		t.Fatalf("config = %+v, want defaults", cfg)
	}
	if !strings.Contains(logs.String(), "replacing unreadable config") {
		t.Fatalf("load error was not logged: %q", logs.String())
	}
}

func TestLoadConfigForSaveMissingFileIsQuiet(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	if cfg := loadConfigForSave(); cfg != config.DefaultConfig() {
		t.Fatalf("config = %+v, want defaults", cfg)
	}
	if logs.Len() != 0 {
		t.Fatalf("unexpected log output: %q", logs.String())
	}
}
