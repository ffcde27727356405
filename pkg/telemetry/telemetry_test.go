package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/dailycare-store/pkg/config"
)

func TestSetup_SinEndpointEsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), "dailycare-test", config.TelemetryConfig{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_ConEndpointRegistraProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	// Dirección no enrutable: no se exporta nada durante el test.
	shutdown, err := Setup(context.Background(), "dailycare-test", config.TelemetryConfig{OTLPEndpoint: "http://192.0.2.1:4318"})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "order.place")
	sc := trace.SpanContextFromContext(trace.ContextWithSpan(context.Background(), span))
	assert.True(t, sc.IsValid())
	assert.True(t, sc.IsSampled())
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
