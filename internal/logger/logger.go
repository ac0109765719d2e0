package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/sim.txt"

// Logger stores lines of text in memory and appends them to a file on disk. Slog exposes the same
// sink as a structured logger for key/value events.
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
	slog  *slog.Logger
}

// New returns a Logger appending to path and ensures its directory exists. An empty path keeps
// lines in memory only. level is a slog level name ("debug", "info", "warn", "error"); unknown
// names fall back to info.
func New(path, level string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	l := &Logger{lines: make([]string, 0), path: path}
	l.slog = slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Log stamps each line itself.
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	return l
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Slog returns the structured logger writing through l.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Log appends a line to the logger and to the log file. Each entry is prefixed with [timestamp]
// using computer time.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf is Log with formatting.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Write lets the slog handler feed Log; every non-empty line of p becomes one entry.
func (l *Logger) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			l.Log(line)
		}
	}
	return len(p), nil
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
