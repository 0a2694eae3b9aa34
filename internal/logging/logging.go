// Package logging builds the zerolog logger shared by the application.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"sketchmap/internal/config"
)

const timeFormat = "2006-01-02 15:04:05.000"

// New returns a logger for cfg. The TUI owns the terminal, so output goes to a
// rotating file; the console writer on stderr is opt-in. The returned closer
// releases the log file.
func New(cfg config.Log) (zerolog.Logger, io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     30,
		}
		writers = append(writers, fileWriter{Logger: lj, formatted: cfg.Formatted})
		closer = lj
	}
	if cfg.Console {
		writers = append(writers, consoleWriter{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat}})
	}
	if len(writers) == 0 {
		return zerolog.Nop(), closer, nil
	}
	level, err := ParseLevel(cfg.Level)
	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	if err != nil {
		logger.Warn().Str("level", cfg.Level).Msg("unknown log level, using info")
	}
	return logger, closer, nil
}

// ParseLevel is zerolog.ParseLevel with an info fallback for empty or unknown names.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.InfoLevel, err
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// consoleWriter reports len(p): ConsoleWriter rewrites the entry, and
// returning its byte count makes zerolog fail with a short write.
type consoleWriter struct {
	zerolog.ConsoleWriter
}

func (c consoleWriter) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	_, err := c.ConsoleWriter.Write(p)
	return len(p), err
}

// fileWriter writes either the raw JSON entry or a single formatted line.
type fileWriter struct {
	*lumberjack.Logger
	formatted bool
}

func (f fileWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if !f.formatted {
		return f.Logger.Write(p)
	}
	line, err := formatEntry(level, p)
	if err != nil {
		return f.Logger.Write(p)
	}
	_, err = f.Logger.Write([]byte(line))
	return len(p), err
}

// formatEntry turns a JSON entry into "time | level | message | k=v ...".
func formatEntry(level zerolog.Level, p []byte) (string, error) {
	var entry map[string]any
	if err := json.Unmarshal(p, &entry); err != nil {
		return "", err
	}
	ts, _ := entry[zerolog.TimestampFieldName].(string)
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		ts = t.Format(timeFormat)
	}
	msg, _ := entry[zerolog.MessageFieldName].(string)

	var extras []string
	for k, v := range entry {
		switch k {
		case zerolog.TimestampFieldName, zerolog.MessageFieldName, zerolog.LevelFieldName:
			continue
		}
		extras = append(extras, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(extras)
	return fmt.Sprintf("%s | %-5s | %s | %s\n", ts, level.String(), msg, strings.Join(extras, " ")), nil
}
