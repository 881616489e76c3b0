package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestNewProvider_StdoutExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()

	provider, err := NewProvider(ctx, Options{
		ServiceName: "storefront-test",
		Environment: "test",
		Exporter:    ExporterStdout,
		Writer:      &buf,
	})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(ctx, "catalog.load")
	span.End()

	require.NoError(t, provider.Shutdown(ctx))
	assert.Contains(t, buf.String(), "catalog.load")
	assert.Contains(t, buf.String(), "storefront-test")
}

func TestNewProvider_None(t *testing.T) {
	provider, err := NewProvider(context.Background(), Options{ServiceName: "storefront-test"})
	require.NoError(t, err)
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_UnknownExporter(t *testing.T) {
	_, err := NewProvider(context.Background(), Options{Exporter: "zipkin"})
	assert.Error(t, err)
}
