package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

const (
	// LogLevelEnvVar is the environment variable that controls logging verbosity.
	// When unset or empty, logging is silent (no zap output).
	// Valid values: "debug", "info", "warn", "error"
	LogLevelEnvVar = "AION_LOG_LEVEL"

	// LogFileEnvVar names a file that receives log output instead of stderr.
	LogFileEnvVar = "AION_LOG_FILE"
)

// Options control logger construction. Empty fields fall back to the
// AION_LOG_LEVEL and AION_LOG_FILE environment variables.
type Options struct {
	Level string
	File  string
}

// Initialize creates a new logger with the specified level.
// If level is empty, it checks AION_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
//
// Logs never go to stdout: the setup wizard owns the terminal there.
func Initialize(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	file := opts.File
	if file == "" {
		file = os.Getenv(LogFileEnvVar)
	}

	output := "stderr"
	if file != "" {
		output = file
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if file == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// No escape codes in files
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the AION_LOG_LEVEL and
// AION_LOG_FILE environment variables.
func InitializeFromEnv() error {
	return Initialize(Options{})
}

// ParseLevel maps a level name to a zap level.
// Unknown names yield info, since a level was explicitly requested.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
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

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Passing nil restores silent mode.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Named returns a child logger tagged with a component name, e.g. "wizard".
func Named(component string) *zap.Logger {
	return GetLogger().Named(component)
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogStepTransition logs a wizard step change
func LogStepTransition(l *zap.Logger, from, to string) {
	l.Debug("Step transition",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogConfigEvent logs a configuration file event such as "loaded" or "saved"
func LogConfigEvent(l *zap.Logger, path, event string, fields ...zap.Field) {
	l.Info("Config event", append([]zap.Field{
		zap.String("path", path),
		zap.String("event", event),
	}, fields...)...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
