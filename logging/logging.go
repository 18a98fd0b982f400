// Package logging builds the worker's structured logger, grounded on
// original_source/src/logger.rs and main.rs's register_logger/init
// sequence (TermLogger + WriteLogger via CombinedLogger) but backed by
// zap instead of simplelog/log. Level selection is environment-driven
// (RUST_LOG there, LOG_LEVEL here).
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logFileName matches the original's WriteLogger target, Errors.log
// in the executable's own directory.
const logFileName = "Errors.log"

// New builds a zap logger combining a console sink (stdout, level
// floor driven by level) with a JSON file sink (Errors.log next to
// the running executable, fixed at a warn floor), mirroring the
// original's CombinedLogger of a TermLogger plus a WriteLogger. If
// logFilePath fails to resolve the executable's own path, the
// process exits with code 101, matching the original's exit on
// env::current_exe() failure.
func New(level string) (*zap.Logger, error) {
	consoleEnc := zapcore.NewConsoleEncoder(encoderConfig())
	consoleCore := zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(levelFromString(level)))

	logPath, err := logFilePath()
	if err != nil {
		zap.S().Errorf("could not get the current executable path: %v", err)
		os.Exit(101)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	jsonEnc := zapcore.NewJSONEncoder(encoderConfig())
	fileCore := zapcore.NewCore(jsonEnc, zapcore.AddSync(file), zap.NewAtomicLevelAt(zapcore.WarnLevel))

	core := zapcore.NewTee(consoleCore, fileCore)
	return zap.New(core), nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// logFilePath resolves Errors.log's path as the directory containing
// the running executable, matching the original's
// env::current_exe().pop().join("Errors.log").
func logFilePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), logFileName), nil
}

func levelFromString(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "trace", "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
