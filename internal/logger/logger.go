package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	ServiceName string
	Development bool
}

// Logger wraps zap.Logger
type Logger struct {
	*zap.Logger
}

var global *Logger

// Init initializes the global logger. Log level configuration is explicit
// and injected at startup; nothing is suppressed process-wide.
func Init(cfg *Config) error {
	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err == nil {
			zapCfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	l, err := zapCfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	if cfg.ServiceName != "" {
		l = l.With(zap.String("service", cfg.ServiceName))
	}

	global = &Logger{l}
	return nil
}

// Get returns the global logger, creating a no-op logger if Init was not called
func Get() *Logger {
	if global == nil {
		global = &Logger{zap.NewNop()}
	}
	return global
}

// Sync flushes any buffered log entries
func Sync() {
	if global != nil {
		_ = global.Logger.Sync()
	}
}
