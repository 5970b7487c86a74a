package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nfrund/gigagent/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New initializes a new slog logger and sets it as the default.
// LOG_FORMAT selects "text" (development, with source locations) or "json".
// When LOG_FILE is set, output is also written to a rotated log file.
func New(cfg config.Provider) *slog.Logger {
	var out io.Writer = os.Stdout
	if path := cfg.GetLogFile(); path != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	logger := slog.New(NewHandler(out, cfg.GetLogFormat(), ParseLevel(cfg.GetLogLevel())))
	slog.SetDefault(logger)
	return logger
}

// NewHandler builds the handler for the given format.
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	switch format {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names yield debug.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
