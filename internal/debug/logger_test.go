package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisabledLoggerDiscards(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(false, "console", &buf)
	l.Infof("hello %d", 1)
	l.Debugw("event", "count", 2)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Infof("ignored")
	l.Debugw("ignored")
	if l.Named("x") != nil {
		t.Fatalf("expected nil child")
	}
	if err := l.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
}

func TestJSONLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(true, "json", &buf).Named("engine")
	l.Debugw("redact", "matches", 3)
	out := buf.String()
	if !strings.Contains(out, `"matches":3`) {
		t.Fatalf("output = %q", out)
	}
	if !strings.Contains(out, `"logger":"engine"`) {
		t.Fatalf("missing logger name: %q", out)
	}
}

func TestConsoleLoggerWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(true, "console", &buf)
	l.Infof("scanned %d categories", 4)
	if !strings.Contains(buf.String(), "scanned 4 categories") {
		t.Fatalf("output = %q", buf.String())
	}
}
