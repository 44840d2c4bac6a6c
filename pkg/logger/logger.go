package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides a structured logging interface
type Logger struct {
	*zap.SugaredLogger
}

// Options controls where and how verbosely a Logger writes.
type Options struct {
	// Level is a zap level name such as "debug" or "info".
	Level string
	// Dir, when set, receives a daily JSON log file next to console output.
	Dir string
}

// New creates a new logger with the given name
func New(name string, opts Options) (*Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			level,
		),
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		timestamp := time.Now().Format("20060102")
		logFile := filepath.Join(opts.Dir, fmt.Sprintf("%s_%s.log", name, timestamp))

		fileWriter, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}

		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(fileWriter),
			level,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named(name)

	return Wrap(logger), nil
}

// Wrap adapts an existing zap logger.
func Wrap(l *zap.Logger) *Logger {
	return &Logger{SugaredLogger: l.Sugar()}
}
