package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestNewTraceContext(t *testing.T) {
	t.Run("keeps given ids", func(t *testing.T) {
		tc := NewTraceContext(context.Background(), "trace-1", "req-1")
		assert.Equal(t, "trace-1", tc.TraceID)
		assert.Equal(t, "req-1", tc.RequestID)
		assert.Len(t, tc.SpanID, 16)
	})

	t.Run("generates missing ids", func(t *testing.T) {
		tc := NewTraceContext(context.Background(), "", "")
		assert.NotEmpty(t, tc.TraceID)
		assert.NotEmpty(t, tc.RequestID)
		assert.NotEqual(t, tc.TraceID, tc.RequestID)
	})

	t.Run("prefers span context", func(t *testing.T) {
		sc := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: trace.TraceID{1, 2, 3},
			SpanID:  trace.SpanID{4, 5, 6},
		})
		ctx := trace.ContextWithSpanContext(context.Background(), sc)

		tc := NewTraceContext(ctx, "ignored", "req-2")
		assert.Equal(t, sc.TraceID().String(), tc.TraceID)
		assert.Equal(t, sc.SpanID().String(), tc.SpanID)
		assert.Equal(t, "req-2", tc.RequestID)
	})
}

func TestTraceRoundTrip(t *testing.T) {
	assert.Nil(t, GetTrace(context.Background()))
	assert.Empty(t, GetRequestID(context.Background()))

	ctx := WithTrace(context.Background(), &TraceContext{TraceID: "t", RequestID: "r"})
	require.NotNil(t, GetTrace(ctx))
	assert.Equal(t, "r", GetRequestID(ctx))
}
