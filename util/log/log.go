// Package log defines a small strict logger with two output levels,
// referenced from https://dave.cheney.net/2015/11/05/lets-talk-about-logging.
package log

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level selects which calls produce output. InfoLevel outputs only Info*,
// DebugLevel outputs both Info* and Debug*.
type Level int

const (
	InfoLevel Level = iota
	DebugLevel
)

// DebugPrefix is inserted between the logger prefix and the message text
// for every Debug* call.
const DebugPrefix = "DEBUG: "

// ErrDiscardedByLevel indicates the last output was dropped because of the
// current level, e.g. Debug() while running at InfoLevel.
var ErrDiscardedByLevel = errors.New("log: output discarded by level")

// Logger writes leveled messages through a standard library log.Logger.
// Write errors are not returned from the output calls for convenience;
// the most recent one can be retrieved later from Err().
type Logger struct {
	logger *log.Logger

	mu      sync.Mutex
	level   Level // under mu
	lastErr error // under mu
}

// New constructs a Logger writing to out. The initial level is InfoLevel.
func New(out io.Writer, prefix string, flag int) *Logger {
	return &Logger{logger: log.New(out, prefix, flag)}
}

func (l *Logger) output(calldepth int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = l.logger.Output(calldepth, msg)
}

func (l *Logger) outputDebug(calldepth int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level < DebugLevel {
		l.lastErr = ErrDiscardedByLevel
		return
	}
	l.lastErr = l.logger.Output(calldepth, DebugPrefix+msg)
}

func (l *Logger) Info(v ...interface{})                 { l.output(3, fmt.Sprint(v...)) }
func (l *Logger) Infoln(v ...interface{})               { l.output(3, fmt.Sprintln(v...)) }
func (l *Logger) Infof(format string, v ...interface{}) { l.output(3, fmt.Sprintf(format, v...)) }

func (l *Logger) Debug(v ...interface{})   { l.outputDebug(3, fmt.Sprint(v...)) }
func (l *Logger) Debugln(v ...interface{}) { l.outputDebug(3, fmt.Sprintln(v...)) }
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.outputDebug(3, fmt.Sprintf(format, v...))
}

func (l *Logger) SetOutput(w io.Writer) { l.logger.SetOutput(w) }

// SetLevel changes the output level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current output level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) SetFlags(flag int)       { l.logger.SetFlags(flag) }
func (l *Logger) SetPrefix(prefix string) { l.logger.SetPrefix(prefix) }

// Err returns the write error of the most recent output call. A successful
// call clears any previously recorded error. A call discarded by level
// records ErrDiscardedByLevel.
func (l *Logger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

var std = New(os.Stderr, "", log.LstdFlags)

func Info(v ...interface{})                 { std.output(3, fmt.Sprint(v...)) }
func Infoln(v ...interface{})               { std.output(3, fmt.Sprintln(v...)) }
func Infof(format string, v ...interface{}) { std.output(3, fmt.Sprintf(format, v...)) }

func Debug(v ...interface{})                 { std.outputDebug(3, fmt.Sprint(v...)) }
func Debugln(v ...interface{})               { std.outputDebug(3, fmt.Sprintln(v...)) }
func Debugf(format string, v ...interface{}) { std.outputDebug(3, fmt.Sprintf(format, v...)) }

func SetOutput(w io.Writer) { std.SetOutput(w) }
func SetLevel(level Level)  { std.SetLevel(level) }
func CurrentLevel() Level   { return std.Level() }
func Err() error            { return std.Err() }

// SilentWriter ignores any write without error.
type SilentWriter struct{}

func (SilentWriter) Write(p []byte) (int, error) { return len(p), nil }

// LimitWriter returns a Writer that writes to w but stops with io.EOF after
// n bytes. n <= 0 means no limit.
func LimitWriter(w io.Writer, n int64) io.Writer {
	if n <= 0 {
		return w
	}
	return &limitedWriter{w: w, n: n}
}

type limitedWriter struct {
	w io.Writer
	n int64 // bytes remaining
}

func (l *limitedWriter) Write(p []byte) (n int, err error) {
	if l.n <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err = l.w.Write(p)
	l.n -= int64(n)
	return
}
