package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wasmiot-abc/internal/config"
)

// New builds a stderr logger from the logging section of cfg.
// A nil cfg uses the defaults the wasm build runs with.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = cfg.Logging.Format
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	// Sampling and stack traces add noise to a process that logs at most once per call
	zc.Sampling = nil
	zc.DisableStacktrace = true
	if cfg.Logging.Format == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Must is New for callers that cannot surface an error, such as wasm exports.
// It falls back to a bare stderr core instead of panicking.
func Must(cfg *config.Config) *zap.Logger {
	logger, err := New(cfg)
	if err == nil {
		return logger
	}
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.InfoLevel))
}
