// Package util provides the low-level helpers shared by every mode:
// levelled diagnostics and the input/output stream lifecycle.
package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel is the -v count a message needs before it is printed.
type LogLevel int

const (
	LogQuiet   LogLevel = iota // -q: nothing but the final error from main
	LogNormal                  // ignored flags, random shifts, chosen shift
	LogVerbose                 // -v: stream names, per-shift chi-squared scores
	LogDebug                   // -vv: run statistics, timestamped
)

// levelTags are the prefixes that make diagnostics greppable when stderr
// is captured alongside a decoded message.
var levelTags = [...]string{
	LogNormal:  "[INF]",
	LogVerbose: "[VRB]",
	LogDebug:   "[DBG]",
}

const warnTag = "[WRN]"

// Logger writes diagnostics to stderr.  Cipher output goes through
// Streams and never through a Logger, so piping stdout stays clean at
// any verbosity.
type Logger struct {
	mu        sync.Mutex
	w         io.Writer
	threshold LogLevel
	stamp     bool
}

// NewLogger returns a Logger for the resolved verbosity (see
// config.Config.Verbosity).  Negative values are treated as quiet and
// debug runs get timestamps.
func NewLogger(verbosity int) *Logger {
	lvl := LogLevel(max(verbosity, int(LogQuiet)))
	return &Logger{w: os.Stderr, threshold: lvl, stamp: lvl >= LogDebug}
}

// SetTimestamps toggles the HH:MM:SS.mmm prefix.
func (l *Logger) SetTimestamps(on bool) { l.stamp = on }

// SetOutput redirects diagnostics, mainly so tests can capture them.
func (l *Logger) SetOutput(w io.Writer) { l.w = w }

// Enabled reports whether lvl passes the threshold.  Callers use it to
// skip building expensive messages such as the full shift score table.
func (l *Logger) Enabled(lvl LogLevel) bool { return lvl <= l.threshold }

// Warn reports a flag or input that was ignored or replaced.
func (l *Logger) Warn(format string, args ...any) {
	if l.Enabled(LogNormal) {
		l.emit(warnTag, format, args)
	}
}

func (l *Logger) Info(format string, args ...any)    { l.logf(LogNormal, format, args) }
func (l *Logger) Verbose(format string, args ...any) { l.logf(LogVerbose, format, args) }
func (l *Logger) Debug(format string, args ...any)   { l.logf(LogDebug, format, args) }

func (l *Logger) logf(lvl LogLevel, format string, args []any) {
	if l.Enabled(lvl) {
		l.emit(levelTags[lvl], format, args)
	}
}

func (l *Logger) emit(tag, format string, args []any) {
	line := tag + " " + fmt.Sprintf(format, args...) + "\n"
	if l.stamp {
		line = time.Now().Format("15:04:05.000") + " " + line
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, line)
}
