package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(New(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	if Level(true) != log.DebugLevel {
		t.Error("verbose should map to debug")
	}
	if Level(false) != log.InfoLevel {
		t.Error("default should be info")
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.InfoLevel)

	ctx := WithLogger(context.Background(), l)
	if FromContext(ctx) != l {
		t.Error("expected the attached logger")
	}
	if FromContext(context.Background()) != log.Default() {
		t.Error("expected default logger without attachment")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algoviz.log")
	l, f, err := OpenFile(path, log.InfoLevel)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("run finished", "algorithm", "Heap Sort")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Heap Sort") {
		t.Errorf("expected log line in file, got %q", data)
	}
}
