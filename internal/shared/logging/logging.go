package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/oops"
	slogmulti "github.com/samber/slog-multi"
)

// Bootstrap returns the logger used before configuration is available:
// text on stdout and JSON errors on stderr.
func Bootstrap() *slog.Logger {
	return slog.New(slogmulti.Fanout(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}),
	))
}

// Setup builds the process logger. Records go to stdout at the given level,
// are appended to logFile when it is set, and errors are mirrored as JSON on
// stderr. The returned closer releases the log file.
func Setup(level slog.Level, logFile string) (*slog.Logger, io.Closer, error) {
	return setup(os.Stdout, os.Stderr, level, logFile)
}

func setup(stdout, stderr io.Writer, level slog.Level, logFile string) (*slog.Logger, io.Closer, error) {
	handlers := []slog.Handler{
		slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: level}),
		slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: slog.LevelError}),
	}

	var closer io.Closer = nopCloser{}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, nil, oops.With("log_file", logFile, "context", "failed to create log directory").Wrap(err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, oops.With("log_file", logFile, "context", "failed to open log file").Wrap(err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
