package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/doeshing/nltklayer/internal/domain"
)

// Options selects the log sinks.
type Options struct {
	// Verbose enables a human-readable console sink on stderr.
	Verbose bool
	// Settings carries level and optional rotating file configuration.
	Settings domain.LogSettings
}

// ZeroLogger implements ports.Logger on top of zerolog.
type ZeroLogger struct {
	log zerolog.Logger
}

// New builds a logger. With neither a console nor a file sink it discards everything.
func New(opts Options) *ZeroLogger {
	var writers []io.Writer
	if opts.Verbose {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
	if file := opts.Settings.File; file != "" {
		if err := os.MkdirAll(filepath.Dir(file), domain.DirectoryPermissions); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   file,
				MaxSize:    defaultInt(opts.Settings.MaxSizeMB, 10),
				MaxBackups: defaultInt(opts.Settings.MaxBackups, 3),
				MaxAge:     defaultInt(opts.Settings.MaxAgeDays, 28),
			})
		}
	}
	if len(writers) == 0 {
		return NewNop()
	}

	level := parseLevel(opts.Settings.Level)
	if opts.Verbose && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Str("module", "nltklayer").Logger()
	return &ZeroLogger{log: log}
}

// NewWithWriter logs JSON lines to w. Used by tests.
func NewWithWriter(w io.Writer, level string) *ZeroLogger {
	return &ZeroLogger{log: zerolog.New(w).Level(parseLevel(level))}
}

// NewNop returns a logger that drops all events.
func NewNop() *ZeroLogger {
	return &ZeroLogger{log: zerolog.Nop()}
}

func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func defaultInt(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
