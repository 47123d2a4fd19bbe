package we

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestConsoleExporterWritesRenderSpans(t *testing.T) {
	var buf bytes.Buffer
	exporter, err := ConsoleExporter(&buf)
	require.NoError(t, err)

	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	defer otel.SetTracerProvider(previous)

	_, err = counterRenderer().Render(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, provider.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name": "render"`)
}

func TestJaegerExporter(t *testing.T) {
	exporter, err := JaegerExporter("http://localhost:14268/api/traces")
	require.NoError(t, err)

	provider := NewTracerProvider(exporter)
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestOTLPExporter(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := OTLPExporter(ctx, "localhost:4317", map[string]string{"x-team": "reducers"})
	require.NoError(t, err)

	provider := NewTracerProvider(exporter)
	assert.NoError(t, provider.Shutdown(ctx))
}
