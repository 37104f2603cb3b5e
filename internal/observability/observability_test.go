package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestRepoLogger_LogRead(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug", "json")
	repoLogger := NewRepoLoggerWith("users", logger)

	ctx := WithCorrelationID(context.Background(), "abc-123")
	repoLogger.LogRead(ctx, map[string]interface{}{"id": 7})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "repository read", record["msg"])
	assert.Equal(t, "users", record["table"])
	assert.Equal(t, "read", record["operation"])
	assert.Equal(t, "abc-123", record["correlation_id"])
	assert.EqualValues(t, 7, record["id"])
}

func TestRepoLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	repoLogger := NewRepoLoggerWith("questions", NewLogger(&buf, "debug", "text"))

	Config.EnableRepoLogging = false
	defer func() { Config.EnableRepoLogging = true }()

	repoLogger.LogRead(context.Background(), nil)
	repoLogger.LogError(context.Background(), errors.New("boom"), "read")
	assert.Empty(t, buf.String())
}

func TestRepoLogger_LevelFiltersReads(t *testing.T) {
	var buf bytes.Buffer
	repoLogger := NewRepoLoggerWith("replies", NewLogger(&buf, "info", "text"))

	repoLogger.LogRead(context.Background(), nil)
	assert.Empty(t, buf.String())

	repoLogger.LogError(context.Background(), errors.New("no such table: replies"), "read")
	assert.Contains(t, buf.String(), "repository error")
	assert.Contains(t, buf.String(), "no such table: replies")
}

func TestExtractCorrelationID_Missing(t *testing.T) {
	assert.Equal(t, "", ExtractCorrelationID(context.Background()))
}

func TestDatabaseMetrics(t *testing.T) {
	m := NewDatabaseMetrics()

	before := testutil.ToFloat64(DatabaseQueryErrors.WithLabelValues("read", "metrics_test"))
	m.CountError("read", "metrics_test")
	after := testutil.ToFloat64(DatabaseQueryErrors.WithLabelValues("read", "metrics_test"))
	assert.Equal(t, before+1, after)

	m.TrackQuery("read", "metrics_test")()
	assert.GreaterOrEqual(t, testutil.CollectAndCount(DatabaseQueryLatency), 1)
}

func TestTraceLayer_TraceRepositoryMethod(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	layer := NewTraceLayer(tp.Tracer("test"), "sqlite")

	_, span := layer.TraceRepositoryMethod(context.Background(), "FindByID", "users")
	EndSpan(span, errors.New("disk I/O error"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "repository.FindByID", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, "sqlite", attrs["db.system"])
	assert.Equal(t, "users", attrs["db.table"])
}

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "questionsdb-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		name    string
		cfg     TracingConfig
		wantErr bool
	}{
		{"stdout", TracingConfig{Exporter: "stdout"}, false},
		{"otlp with endpoint", TracingConfig{Exporter: "otlp", OTLPEndpoint: "localhost:4318"}, false},
		{"otlp without endpoint", TracingConfig{Exporter: "otlp"}, true},
		{"unknown", TracingConfig{Exporter: "zipkin"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, err := newExporter(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, exporter)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, exporter)
			assert.NoError(t, exporter.Shutdown(context.Background()))
		})
	}
}

func TestNewSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), newSampler(1).Description())
	assert.Contains(t, newSampler(0.25).Description(), "TraceIDRatioBased{0.25}")
}
