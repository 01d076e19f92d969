// Package logging provides the process-wide structured logger, built on
// go.uber.org/zap and driven by the log_level config key. A "NONE" level,
// not one of zap's own, suppresses all output entirely.
package logging

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mawarith.dev/inheritance-calculator/internal/config"
)

var (
	logger     *zap.SugaredLogger
	loggerOnce sync.Once
	silentTest bool
	mu         sync.Mutex
)

// SetSilentLoggingForTest forces the logger to discard all output,
// regardless of configured level. Test-only.
func SetSilentLoggingForTest() {
	mu.Lock()
	defer mu.Unlock()
	silentTest = true
}

// resetLogger clears the cached logger so the next call rebuilds it from
// current config. Test-only.
func resetLogger() {
	mu.Lock()
	defer mu.Unlock()
	logger = nil
	loggerOnce = sync.Once{}
}

func buildLogger() *zap.SugaredLogger {
	mu.Lock()
	silent := silentTest
	mu.Unlock()

	level := strings.ToUpper(config.GetString(config.LogLevelKey))
	if level == "" {
		level = "INFO"
	}
	if silent || level == "NONE" {
		return zap.NewNop().Sugar()
	}

	var zapLevel zapcore.Level
	switch level {
	case "DEBUG":
		zapLevel = zapcore.DebugLevel
	case "WARN":
		zapLevel = zapcore.WarnLevel
	case "ERROR":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.TimeKey = "ts"
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

func instance() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		logger = buildLogger()
	})
	return logger
}

// Debug logs a debug-level message with printf-style formatting.
func Debug(format string, args ...interface{}) { instance().Debugf(format, args...) }

// Info logs an info-level message with printf-style formatting.
func Info(format string, args ...interface{}) { instance().Infof(format, args...) }

// Warn logs a warn-level message with printf-style formatting.
func Warn(format string, args ...interface{}) { instance().Warnf(format, args...) }

// Error logs an error-level message with printf-style formatting.
func Error(format string, args ...interface{}) { instance().Errorf(format, args...) }
