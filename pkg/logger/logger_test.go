package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "geotjs/internal/core/context"
)

func observed(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &Logger{zap.New(core).Sugar()}, logs
}

func TestFromContext(t *testing.T) {
	log, logs := observed(zapcore.DebugLevel)

	ctx := WithLogger(context.Background(), log.WithComponent("codec"))
	ctx = appctx.WithTrace(ctx, &appctx.TraceContext{TraceID: "t-1", RequestID: "r-1"})

	Warn(ctx, "cannot decode document", "file", "a.xml")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "cannot decode document", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "codec", fields["component"])
	assert.Equal(t, "t-1", fields["trace_id"])
	assert.Equal(t, "r-1", fields["request_id"])
	assert.Equal(t, "a.xml", fields["file"])
}

func TestLevels(t *testing.T) {
	log, logs := observed(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), log)

	Debug(ctx, "hidden")
	Info(ctx, "shown")
	Error(ctx, "failed")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestNew(t *testing.T) {
	log, err := New(Config{Level: "not-a-level", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.True(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))

	assert.NotNil(t, Nop())
	assert.Same(t, Default(), Default())
}
