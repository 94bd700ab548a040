package logger

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSlogLogger_SetLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "trace", want: "trace"},
		{in: "debug", want: "debug"},
		{in: "warn", want: "warn"},
		{in: "error", want: "error"},
		{in: "fatal", want: "fatal"},
		{in: "bogus", want: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l := Discard()
			l.SetLogLevel(tt.in)
			assert.Equal(t, tt.want, l.GetLogLevel())
		})
	}
}

func TestPrefixedLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrefixedLogger(NewWriter(&buf), "storage")

	p.Error("save failed", errors.New("disk full"))

	out := buf.String()
	assert.Contains(t, out, "[storage] save failed")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "level=ERROR")
}

func TestSlogLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)
	l.SetLogLevel("warn")

	l.Info("hidden")
	l.Trace("hidden too")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewPrefixedLogger_Nested(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrefixedLogger(NewPrefixedLogger(NewWriter(&buf), "app"), "hub")

	assert.Equal(t, "app/hub", p.Prefix())

	p.Info("client connected")
	assert.Contains(t, buf.String(), "[app/hub] client connected")
}
