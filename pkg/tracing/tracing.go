package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config opciones del tracer.
type Config struct {
	ServiceName string
	SampleRatio float64 // fracción de trazas raíz muestreadas (0..1)
}

// Setup instala como globales un TracerProvider del SDK y el propagador W3C (traceparent + baggage).
// Sin exporter los spans no salen del proceso, pero los ids de traza se generan y se propagan,
// que es lo que usan los logs de acceso. Llamar a Shutdown del provider al apagar.
func Setup(cfg Config) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp
}
