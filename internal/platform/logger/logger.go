package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap so the rest of the service depends on one place.
type Logger struct {
	*zap.Logger
	config *Config
}

// NewLogger builds a logger from the LOG_LEVEL / LOG_FORMAT environment
// variables. Invalid settings fall back to production JSON at info level.
func NewLogger() *Logger {
	cfg := DefaultConfig()

	var zapConfig zap.Config
	if cfg.Level == "debug" {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if err := zapConfig.Level.UnmarshalText([]byte(cfg.Level)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL %q, defaulting to info: %v\n", cfg.Level, err)
		zapConfig.Level.SetLevel(zapcore.InfoLevel)
	}

	if strings.EqualFold(cfg.Format, "console") || strings.EqualFold(cfg.Format, "text") {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	log, err := zapConfig.Build(zap.AddCallerSkip(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build zap logger, falling back to production defaults: %v\n", err)
		log, _ = zap.NewProduction()
	}
	return &Logger{Logger: log, config: cfg}
}

// NewNop returns a logger that discards everything. For tests.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop(), config: DefaultConfig()}
}

// Named adds a path segment to the logger's name for per-component context.
func (l *Logger) Named(name string) *Logger {
	return &Logger{Logger: l.Logger.Named(name), config: l.config}
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...), config: l.config}
}
