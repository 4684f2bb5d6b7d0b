package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_DefaultsToInfoConsole(t *testing.T) {
	l := New(Config{})
	require.NotNil(t, l)

	// Field conversion and level filtering must not panic.
	l.Debug("dropped", "key", "value")
	l.Info("kept", "key", "value")
	l.With("component", "test").Warn("warned")
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, getLogLevel(tt.level))
		})
	}
}

func TestToZapFields(t *testing.T) {
	fields := toZapFields([]any{"domain", "example.com", "attempts", 3})
	require.Len(t, fields, 2)
	assert.Equal(t, "domain", fields[0].Key)
	assert.Equal(t, "attempts", fields[1].Key)

	// A trailing key without a value is dropped.
	assert.Len(t, toZapFields([]any{"orphan"}), 0)

	// Prebuilt zap fields pass through.
	passed := toZapFields([]any{zap.String("k", "v")})
	require.Len(t, passed, 1)
	assert.Equal(t, "k", passed[0].Key)
}

func TestNoOp_DoesNothing(t *testing.T) {
	l := NewNoOp()
	l.Debug("a")
	l.Info("b", "k", "v")
	l.Warn("c")
	l.Error("d")
	assert.Equal(t, l, l.With("k", "v"))
}
