package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerConfig holds the configuration for constructing a logger.
type LoggerConfig struct {
	// Debug enables debug-level logging and development-friendly output
	Debug bool
}

// NewLogger creates a new zap logger with the provided configuration.
// Debug mode lowers the level to Debug and uses the development encoder.
//
// Parameters:
//   - cfg: Logger configuration
//
// Returns:
//   - *zap.Logger: The configured logger
//   - error: Any error encountered while building the logger
func NewLogger(cfg *LoggerConfig, options ...zap.Option) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	if cfg.Debug {
		c = zap.NewDevelopmentConfig()
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return c.Build(options...)
}

// NewNoopLogger returns a logger that discards all output. Useful in tests
// that do not care about log assertions.
func NewNoopLogger() *zap.Logger {
	return zap.NewNop()
}
