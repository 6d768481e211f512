package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/datamunge/teamsplit/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = ""
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "teamsplit.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	l.Quality("blank name")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("INFO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if !bytes.Contains(b, []byte("QUALITY")) {
		t.Errorf("expected QUALITY line in log file, got: %s", string(b))
	}
}

func TestNewLogger_CreatesLogDir(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "nested", "teamsplit.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	if _, err := os.Stat(filepath.Dir(cfg.LogFile)); err != nil {
		t.Errorf("log directory not created: %v", err)
	}
}

func TestDebug_GatedByVerbose(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "teamsplit.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug(false, "hidden")
	l.Debug(true, "shown")
	l.Close()

	b, _ := os.ReadFile(cfg.LogFile)
	if bytes.Contains(b, []byte("hidden")) {
		t.Error("Debug with verbose=false must not log")
	}
	if !bytes.Contains(b, []byte("shown")) {
		t.Error("Debug with verbose=true must log")
	}
}
