package cli

import (
	"bytes"
	"context"
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
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("x") }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("x") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Rendered 2 axes")

	out := buf.String()
	if !strings.Contains(out, "Rendered 2 axes (") || !strings.Contains(out, "s)") {
		t.Errorf("done() output = %q, want message with elapsed time", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	got := loggerFromContext(withLogger(context.Background(), custom))
	if got != custom {
		t.Fatal("loggerFromContext() did not return the attached logger")
	}
	got.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("attached logger wrote %q", buf.String())
	}
}
