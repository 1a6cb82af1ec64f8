// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ------------------- global loggers -------------------

// Level writes printf-style messages at a fixed zerolog level.
type Level struct {
	level zerolog.Level
}

// four logger levels accessible throughout the application
var (
	Info  = Level{level: zerolog.InfoLevel}
	Warn  = Level{level: zerolog.WarnLevel}
	Error = Level{level: zerolog.ErrorLevel}
	Debug = Level{level: zerolog.DebugLevel}
)

// base is the logger every Level writes through. It starts on stderr so that
// packages logging before InitLogger (and tests) still produce output.
var base = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Printf logs a formatted message.
func (l Level) Printf(format string, v ...interface{}) {
	base.WithLevel(l.level).Msgf(format, v...)
}

// Println logs its operands joined by spaces.
func (l Level) Println(v ...interface{}) {
	base.WithLevel(l.level).Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// Get returns the underlying zerolog logger for structured fields.
func Get() *zerolog.Logger {
	return &base
}

// ------------------- logger initialization -------------------

// Options control where log output goes.
type Options struct {
	Env    string // "development" uses a human-readable console writer
	Dir    string // when set, a timestamped log file is created here
	Output io.Writer
}

// InitLogger creates or reinitializes the logging system. It writes to
// Output (stdout by default) and, if Dir is set, to a timestamped file in Dir.
// The returned closer releases the log file, if any.
func InitLogger(opts Options) (io.Closer, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	var file *os.File
	writers := []io.Writer{out}
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0700); err != nil {
			return nil, err
		}
		name := filepath.Join(opts.Dir, time.Now().Format("2006-01-02_15-04-05")+".log")
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec
		if err != nil {
			return nil, err
		}
		file = f
		writers = append(writers, f)
	}

	base = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	SetLogLevel(opts.Env)
	if file == nil {
		return nopCloser{}, nil
	}
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetLogLevel discards debug output in production.
func SetLogLevel(env string) {
	if env == "production" {
		base = base.Level(zerolog.InfoLevel)
		return
	}
	base = base.Level(zerolog.DebugLevel)
}
