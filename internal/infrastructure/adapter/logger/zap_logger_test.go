package logger

import (
	"testing"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	atom := zap.NewAtomicLevelAt(zap.InfoLevel)
	observed, logs := observer.New(atom)
	l := newWithCore(observed, atom)

	l.Debug("hidden", nil)
	l.Info("Balance topped up", map[string]any{"userId": uint64(1), "amount": int64(1000)})
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, "Balance topped up", entry.Message)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, int64(1000), entry.ContextMap()["amount"])

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Debug("visible", nil)
	assert.Equal(t, 2, logs.Len())

	l.SetLevel(core.LogLevelError)
	l.Warn("suppressed", nil)
	l.Error("kept", map[string]any{"error": "boom"})
	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, "kept", logs.All()[2].Message)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, ParseLevel("warning"))
	assert.Equal(t, core.LogLevelError, ParseLevel("error"))
	assert.Equal(t, core.LogLevelInfo, ParseLevel(""))
	assert.Equal(t, core.LogLevelInfo, ParseLevel("verbose"))
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger(Options{Level: "warn", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
}
