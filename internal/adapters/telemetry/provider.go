// Package telemetry implements the Tracer port with OpenTelemetry.
package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/zerr"
)

// InstrumentationName names the tracer used by the engines.
const InstrumentationName = "go.trai.ch/propstore"

// Provider owns the SDK tracer provider and its exporters.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider creates a tracer provider for serviceName. When the stdout
// exporter is enabled, finished spans are written to w as JSON.
func NewProvider(serviceName string, settings domain.TelemetrySettings, w io.Writer, extra ...sdktrace.SpanProcessor) (*Provider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	}

	if settings.Stdout {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to create stdout trace exporter")
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}
	for _, p := range extra {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}

	return &Provider{tp: sdktrace.NewTracerProvider(opts...)}, nil
}

// Tracer returns a ports.Tracer backed by this provider.
func (p *Provider) Tracer() *OTelTracer {
	return NewOTelTracer(p.tp.Tracer(InstrumentationName))
}

// Shutdown flushes pending spans and stops the exporters.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
