package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"loud":    zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewshell.log")
	logger, err := NewFile(path, "debug")
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	logger.Debug("navigate", zap.String("path", "/x"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"msg":"navigate"`) || !strings.Contains(line, `"path":"/x"`) {
		t.Fatalf("unexpected log line: %s", line)
	}
}

func TestNewFileRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewshell.log")
	logger, err := NewFile(path, "warn")
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	logger.Info("quiet")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "quiet") {
		t.Fatalf("info line written at warn level: %s", data)
	}
}
