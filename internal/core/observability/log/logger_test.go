package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, lvl)

	_, err = ParseLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestSetLevelFiltersLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	atomicLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	l := &Logger{zapLogger: zap.New(core), level: atomicLevel}

	l.Log(LevelDebug, "hidden")
	assert.Equal(t, 0, logs.Len())

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	l.Log(LevelDebug, "shown", Int("points", 3))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(3), logs.All()[0].ContextMap()["points"])
}

func TestFieldConversion(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{zapLogger: zap.New(core), level: zap.NewAtomicLevelAt(zap.DebugLevel)}

	l.With(String("system", "collision")).Named("scanner").Info("frame",
		Uint64("frame", 7),
		Bool("events", true),
		Float64("dt", 0.5),
		Error(errors.New("boom")),
	)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "scanner", entry.LoggerName)
	ctx := entry.ContextMap()
	assert.Equal(t, "collision", ctx["system"])
	assert.Equal(t, uint64(7), ctx["frame"])
	assert.Equal(t, true, ctx["events"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestProvideWithoutLogger(t *testing.T) {
	assert.NotNil(t, Provide())
}
