package log

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLoggerLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	l := New(buf, "", 0)

	l.Debug("hidden")
	if got := buf.String(); got != "" {
		t.Errorf("Debug at InfoLevel wrote %q, want empty", got)
	}
	if err := l.Err(); !errors.Is(err, ErrDiscardedByLevel) {
		t.Errorf("Err() = %v, want ErrDiscardedByLevel", err)
	}

	l.SetLevel(DebugLevel)
	l.Debug("shown")
	if got := buf.String(); !strings.Contains(got, DebugPrefix+"shown") {
		t.Errorf("Debug at DebugLevel wrote %q, want containing %q", got, DebugPrefix+"shown")
	}
	if err := l.Err(); err != nil {
		t.Errorf("Err() = %v, want nil after successful output", err)
	}
}

func TestLoggerInfoAlwaysWritten(t *testing.T) {
	buf := new(bytes.Buffer)
	l := New(buf, "prefix: ", 0)
	l.Infof("value=%d", 42)
	if got := buf.String(); !strings.Contains(got, "prefix: value=42") {
		t.Errorf("Infof wrote %q", got)
	}
}

func TestLimitWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := LimitWriter(buf, 4)
	if n, err := w.Write([]byte("abcdef")); n != 4 || err != nil {
		t.Errorf("Write = (%d, %v), want (4, nil)", n, err)
	}
	if n, err := w.Write([]byte("gh")); n != 0 || err != io.EOF {
		t.Errorf("Write after limit = (%d, %v), want (0, EOF)", n, err)
	}
	if got := buf.String(); got != "abcd" {
		t.Errorf("written %q, want %q", got, "abcd")
	}
}

func TestLimitWriterNoLimit(t *testing.T) {
	buf := new(bytes.Buffer)
	w := LimitWriter(buf, 0)
	if w != io.Writer(buf) {
		t.Errorf("LimitWriter(w, 0) should return w unchanged")
	}
}
