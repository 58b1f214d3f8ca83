package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds a Logger from config.
//
// Output "stderr" (or empty) writes to os.Stderr. Output "file" writes to
// config.FilePath through a lumberjack rotating writer; if the path is empty
// or its directory cannot be created, it falls back to stderr.
func NewLogger(config Config) Logger {
	var w io.Writer

	switch config.Output {
	case OutputFile:
		w = newRotatingWriter(config)
	case OutputStderr, "":
		w = os.Stderr
	default:
		fmt.Fprintf(os.Stderr, "wiseio: unknown logging output %q, using stderr\n", config.Output)
		w = os.Stderr
	}

	return NewLoggerWithWriter(config, w)
}

func newRotatingWriter(config Config) io.Writer {
	if config.FilePath == "" {
		fmt.Fprintln(os.Stderr, "wiseio: logging output is file but no path is set, using stderr")
		return os.Stderr
	}

	dir := filepath.Dir(config.FilePath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			fmt.Fprintf(os.Stderr, "wiseio: cannot create log directory %q: %v, using stderr\n", dir, err)
			return os.Stderr
		}
	}

	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
}

// NewLoggerWithWriter builds a Logger writing to w. Output is ignored.
func NewLoggerWithWriter(config Config, w io.Writer) Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(config.Level)}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return NewSlogAdapter(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
