package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "TROUBLESHOOTER_LOG_LEVEL"

// LogFileEnvVar redirects log output to a file. The wizard draws on the
// terminal, so interactive sessions should log to a file.
const LogFileEnvVar = "TROUBLESHOOTER_LOG_FILE"

// Options controls logger construction. Empty fields fall back to the
// environment variables above.
type Options struct {
	Level      string // debug, info, warn, error
	OutputPath string // file path, "stderr" or "stdout"
}

// Initialize creates a new logger with the specified level, writing to stderr.
// If level is empty, it checks TROUBLESHOOTER_LOG_LEVEL.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	return InitializeWithOptions(Options{Level: level})
}

// InitializeWithOptions creates a new logger from opts
func InitializeWithOptions(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// Silent mode
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := opts.OutputPath
	if output == "" {
		output = os.Getenv(LogFileEnvVar)
	}
	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if output == "stderr" || output == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		// No ANSI escapes in files
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// InitializeFromEnv initializes the logger purely from environment variables
func InitializeFromEnv() error {
	return InitializeWithOptions(Options{})
}

// parseLevel maps a level name to a zap level.
// Unknown names mean info, since the user asked for logging of some kind.
func parseLevel(level string) zapcore.Level {
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

// SetLogger replaces the global logger. Passing nil restores silent mode.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
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

// NewSessionID returns a fresh identifier used to correlate one session's log lines
func NewSessionID() string {
	return uuid.NewString()
}

// LogSessionStart logs the start of a wizard or resolve session
func LogSessionStart(sessionID string, mode string) {
	Info("Session started",
		zap.String("session_id", sessionID),
		zap.String("mode", mode),
	)
}

// LogSessionEnd logs the end of a session and whether it reached a result
func LogSessionEnd(sessionID string, complete bool) {
	Info("Session ended",
		zap.String("session_id", sessionID),
		zap.Bool("complete", complete),
	)
}

// LogTransition logs an applied selection operation at debug level
func LogTransition(sessionID, op, code, before, after string) {
	Debug("Selection changed",
		zap.String("session_id", sessionID),
		zap.String("op", op),
		zap.String("code", code),
		zap.String("before", before),
		zap.String("after", after),
	)
}

// LogRejected logs a selection operation the state machine refused
func LogRejected(sessionID, op, code string, err error) {
	Warn("Selection rejected",
		zap.String("session_id", sessionID),
		zap.String("op", op),
		zap.String("code", code),
		zap.Error(err),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
