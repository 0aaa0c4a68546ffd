package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"k8s.io/klog/v2"
)

// endpointVariables enable trace export when any of them is set.
var endpointVariables = []string{
	"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT",
	"OTEL_EXPORTER_OTLP_ENDPOINT",
}

func enabled() bool {
	for _, v := range endpointVariables {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// InitTracer installs a global OTLP/HTTP tracer provider when an OTLP endpoint is configured
// through the standard OTEL_* environment variables. The returned cleanup flushes pending spans.
func InitTracer(ctx context.Context, serviceName, serviceVersion string) (func(), error) {
	if !enabled() {
		klog.V(2).Info("OpenTelemetry tracing disabled, no OTLP endpoint configured")
		return func() {}, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		klog.Errorf("failed to create OTLP trace exporter: %v", err)
		return func() {}, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
	))
	if err != nil {
		klog.Errorf("failed to create OpenTelemetry resource: %v", err)
		return func() {}, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	klog.V(1).Infof("OpenTelemetry tracing enabled for %s %s", serviceName, serviceVersion)

	return func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			klog.Errorf("failed to shut down tracer provider: %v", err)
		}
	}, nil
}
