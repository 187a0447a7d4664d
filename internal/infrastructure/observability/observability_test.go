package observability

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_ProductionWritesJSON(t *testing.T) {
	previous := log.Logger
	defer func() { log.Logger = previous }()

	var buf bytes.Buffer
	initLogger(&buf, "insights-test", "production")

	LoggerFromContext(context.Background()).Info().Str("route", "/patterns").Msg("call")
	LoggerFromContext(context.Background()).Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, `"service":"insights-test"`)
	assert.Contains(t, out, `"route":"/patterns"`)
	assert.NotContains(t, out, "hidden")
}

func TestInitLogger_DevelopmentLogsDebug(t *testing.T) {
	previous := log.Logger
	defer func() { log.Logger = previous }()

	var buf bytes.Buffer
	initLogger(&buf, "insights-test", "development")

	LoggerFromContext(context.Background()).Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestMetrics_RecordWithNoopProvider(t *testing.T) {
	metrics, err := InitMetrics()
	require.NoError(t, err)

	ctx, span := StartSpan(context.Background(), "test")
	defer span.End()

	assert.NotPanics(t, func() {
		RecordRequestMetric(ctx, metrics, "GET", "/patterns", "ok", 15*time.Millisecond)
		RecordInsightsFallback(ctx, metrics)
		RecordRequestMetric(ctx, nil, "GET", "/patterns", "ok", time.Millisecond)
		RecordInsightsFallback(ctx, nil)
	})
}
