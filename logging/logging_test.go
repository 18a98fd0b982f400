package logging

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"trace":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}

	for input, want := range cases {
		if got := levelFromString(input); got != want {
			t.Errorf("levelFromString(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewBuildsLogger(t *testing.T) {
	log, err := New("debug")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if log == nil {
		t.Fatal("New() returned nil logger")
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("logger built with level=debug should have debug enabled")
	}
}

func TestLogFilePathNextToExecutable(t *testing.T) {
	path, err := logFilePath()
	if err != nil {
		t.Fatalf("logFilePath() error = %v", err)
	}
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable() error = %v", err)
	}
	want := filepath.Join(filepath.Dir(exe), "Errors.log")
	if path != want {
		t.Errorf("logFilePath() = %q, want %q", path, want)
	}
}
