package http

import (
	"errors"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	HeaderRequestID = "X-Request-ID"
	tracerName      = "github.com/jhoicas/cervejaria-api/internal/interfaces/http"
)

// Metrics contadores HTTP en un registry propio (no el global, para poder crear varias apps en tests).
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registra http_requests_total y http_request_duration_seconds bajo namespace.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP por método, ruta y status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(
		m.requests,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) observe(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	s := strconv.Itoa(status)
	m.requests.WithLabelValues(method, route, s).Inc()
	m.duration.WithLabelValues(method, route, s).Observe(elapsed.Seconds())
}

// Observability combina:
//   - X-Request-ID (se respeta el recibido o se genera uno)
//   - extracción de W3C trace context y un span por petición
//   - logger por petición en el contexto (zerolog.Ctx) y log de acceso
//   - métricas Prometheus con etiquetas de baja cardinalidad (ruta de plantilla, no path real)
func Observability(base zerolog.Logger, metrics *Metrics) fiber.Handler {
	tracer := otel.Tracer(tracerName)
	prop := otel.GetTextMapPropagator()

	return func(c *fiber.Ctx) error {
		start := time.Now()

		headers := nethttp.Header{}
		c.Request().Header.VisitAll(func(k, v []byte) {
			headers.Add(string(k), string(v))
		})
		ctx := prop.Extract(c.UserContext(), propagation.HeaderCarrier(headers))
		ctx, span := tracer.Start(ctx, c.Method()+" "+c.Path(), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)

		logCtx := base.With().Str("request_id", rid)
		if sc := span.SpanContext(); sc.IsValid() {
			logCtx = logCtx.Str("trace_id", sc.TraceID().String()).Str("span_id", sc.SpanID().String())
		}
		reqLogger := logCtx.Logger()
		c.SetUserContext(reqLogger.WithContext(ctx))

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		elapsed := time.Since(start)

		span.SetAttributes(
			attribute.String("http.request.method", c.Method()),
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", status),
		)
		if status >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, nethttp.StatusText(status))
		}
		metrics.observe(c.Method(), route, status, elapsed)

		event := reqLogger.Info()
		if status >= fiber.StatusInternalServerError {
			event = reqLogger.Error().Err(err)
		}
		event.
			Str("method", c.Method()).
			Str("route", route).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("petición HTTP")

		return err
	}
}
