package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesModuleAndDetails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("note", "note created", map[string]interface{}{"slug": "test-note"})
	l.Error("note", "publish failed", map[string]interface{}{"error": errors.New("boom")})
	l.Debug("note", "no details", nil)

	entries := logs.All()
	assert.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "note", first["module"])
	assert.Equal(t, map[string]interface{}{"slug": "test-note"}, first["details"])

	second := entries[1].ContextMap()
	assert.Equal(t, "boom", second["error"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Warn("x", "ignored", nil)
	assert.NoError(t, l.Sync())
}
