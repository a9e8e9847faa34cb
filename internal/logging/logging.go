// Package logging builds the process logger: a slog handler fanned out to
// stderr, an optional JSON log file and, when requested, the systemd journal.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options selects the handlers and level of a logger.
type Options struct {
	Level   string // debug, info, warn or error
	Format  string // text or json
	File    string // optional JSON log file
	Journal bool   // also log to the systemd journal
	Verbose bool   // forces debug level
	Writer  io.Writer
}

// Logger is a configured slog.Logger and the resources it holds open.
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
	file  *os.File
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		lvl = slog.LevelDebug
	}
	level := new(slog.LevelVar)
	level.Set(lvl)

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	var terminal slog.Handler
	switch opts.Format {
	case "", "text":
		terminal = slog.NewTextHandler(w, handlerOpts)
	case "json":
		terminal = slog.NewJSONHandler(w, handlerOpts)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
	handlers = append(handlers, terminal)

	l := &Logger{level: level}
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		l.file = f
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOpts))
	}

	if opts.Journal {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = journalKey(a.Key)
				return a
			},
			ReplaceGroup: journalKey,
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "systemd journal unavailable", 0)
			record.Add("error", err)
			_ = terminal.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journal)
		}
	}

	l.Logger = slog.New(&sessionHandler{Handler: slogmulti.Fanout(handlers...)})
	return l, nil
}

// SetLevel changes the level of every handler.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// journald field names are upper case letters, digits and underscores.
func journalKey(key string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(key))
}
