package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog redirects the standard logger into a buffer for one test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		verbose bool
		want    bool
	}{
		{"quiet by default", "", false, false},
		{"AUDIOBAR_DEBUG set", "1", false, true},
		{"AUDIOBAR_DEBUG any value", "true", false, true},
		{"--verbose without env", "", true, true},
		{"--verbose and env", "1", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(DebugEnv, tt.env)
			SetVerbose(tt.verbose)
			t.Cleanup(func() { SetVerbose(false) })

			assert.Equal(t, tt.want, DebugEnabled())
		})
	}
}

func TestEnvLogger_DebugGating(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		expectLog bool
	}{
		{"prints when AUDIOBAR_DEBUG is set", "1", true},
		{"silent when AUDIOBAR_DEBUG is empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			t.Setenv(DebugEnv, tt.env)

			NewEnvLogger("[render]").Debug("rendering %d bars on %dx%d cells", 13, 80, 25)

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[render] rendering 13 bars on 80x25 cells")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		logFn  func(Logger)
		want   string
	}{
		{
			name:   "info",
			prefix: "[config]",
			logFn:  func(l Logger) { l.Info("loaded %s", ".audiobar.yaml") },
			want:   "[config] loaded .audiobar.yaml",
		},
		{
			name:   "warn",
			prefix: "[render]",
			logFn:  func(l Logger) { l.Warn("progress %g is outside 0-1, drawing at %g", 1.5, 0.0) },
			want:   "[render] WARN: progress 1.5 is outside 0-1, drawing at 0",
		},
		{
			name:   "error",
			prefix: "[demo]",
			logFn:  func(l Logger) { l.Error("program exited: %v", "tty closed") },
			want:   "[demo] ERROR: program exited: tty closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			t.Setenv(DebugEnv, "")

			tt.logFn(NewEnvLogger(tt.prefix))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestSetVerbose(t *testing.T) {
	buf := captureLog(t)
	t.Setenv(DebugEnv, "")
	t.Cleanup(func() { SetVerbose(false) })

	l := NewEnvLogger("[demo]")
	l.Debug("style switched to %s", "dynamic")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	l.Debug("style switched to %s", "dynamic")
	assert.Contains(t, buf.String(), "[demo] style switched to dynamic")
}

func TestNoopLogger(t *testing.T) {
	buf := captureLog(t)
	t.Setenv(DebugEnv, "1")

	l := Noop()
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	assert.Empty(t, buf.String())
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("style switched to %s", "dynamic")
	l.Warn("%d columns is too narrow for a single bar", 3)
	require.Len(t, l.Messages, 2)

	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "style switched to dynamic", l.Messages[0].Message)
	assert.Equal(t, "warn", l.Messages[1].Level)
	assert.Equal(t, "3 columns is too narrow for a single bar", l.Messages[1].Message)

	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("error"))

	l.Clear()
	assert.Empty(t, l.Messages)
	assert.False(t, l.HasLevel("debug"))
}
