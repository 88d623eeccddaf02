package observability

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	LogPath    string
	LogLevel   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Logger wraps slog with rotated file output. An empty LogPath logs to
// stderr, which is what the memory-driver dry runs and tests want.
type Logger struct {
	*slog.Logger
	rotator *lumberjack.Logger
}

func NewLogger(opts Options) *Logger {
	var w io.Writer = os.Stderr
	var rotator *lumberjack.Logger
	if opts.LogPath != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.LogPath,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		w = rotator
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(opts.LogLevel)})
	return &Logger{
		Logger:  slog.New(handler),
		rotator: rotator,
	}
}

// NewTestLogger discards all output.
func NewTestLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *Logger) Close() error {
	if l.rotator != nil {
		return l.rotator.Close()
	}
	return nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
