// Package telemetry installs an OpenTelemetry tracer provider that exports
// reqforge spans (request parsing and mutant generation) over OTLP/gRPC.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/reqforge/reqforge/pkg/defaults"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Options configures Setup.
type Options struct {
	// Endpoint is the OTLP collector address (e.g. "localhost:4317").
	Endpoint string

	// ServiceName defaults to defaults.ToolName.
	ServiceName string

	// Insecure disables TLS on the collector connection.
	Insecure bool

	// Headers are sent with every export request.
	Headers map[string]string

	// RunID tags every span's resource, tying traces to one CLI run.
	RunID string

	// Exporter overrides the OTLP exporter. Tests use an in-memory one.
	Exporter sdktrace.SpanExporter
}

// ShutdownFunc flushes pending spans and releases the exporter.
type ShutdownFunc func(context.Context) error

// Setup builds the tracer provider and installs it globally.
func Setup(ctx context.Context, opts Options) (ShutdownFunc, error) {
	if opts.ServiceName == "" {
		opts.ServiceName = defaults.ToolName
	}

	exporter := opts.Exporter
	if exporter == nil {
		if opts.Endpoint == "" {
			opts.Endpoint = defaults.OTelEndpoint
		}
		exporterOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(opts.Endpoint)}
		if opts.Insecure {
			exporterOpts = append(exporterOpts,
				otlptracegrpc.WithInsecure(),
				otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
			)
		}
		if len(opts.Headers) > 0 {
			exporterOpts = append(exporterOpts, otlptracegrpc.WithHeaders(opts.Headers))
		}

		connectCtx, cancel := context.WithTimeout(ctx, defaults.TelemetryConnect)
		defer cancel()
		exp, err := otlptracegrpc.New(connectCtx, exporterOpts...)
		if err != nil {
			return nil, fmt.Errorf("creating OTLP exporter for %s: %w", opts.Endpoint, err)
		}
		exporter = exp
	}

	attrs := []attribute.KeyValue{
		semconv.ServiceName(opts.ServiceName),
		semconv.ServiceVersion(defaults.Version),
	}
	if opts.RunID != "" {
		attrs = append(attrs, attribute.String("reqforge.run_id", opts.RunID))
	}
	res := resource.NewWithAttributes(semconv.SchemaURL, attrs...)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, defaults.TelemetryShutdown)
		defer cancel()
		return tp.Shutdown(ctx)
	}, nil
}

// Tracer returns the reqforge CLI tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(defaults.ToolName + "/cli")
}

// Elapsed records a duration attribute in milliseconds on span.
func Elapsed(span trace.Span, start time.Time) {
	span.SetAttributes(attribute.Float64("elapsed_ms", float64(time.Since(start).Microseconds())/1000))
}
