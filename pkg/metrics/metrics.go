// Package metrics expone los colectores Prometheus del servicio HTTP.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa el registro y los colectores HTTP. Se construye una vez por proceso.
type Metrics struct {
	Registry *prometheus.Registry

	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registra los colectores bajo el namespace dado.
func New(namespace string) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Peticiones HTTP en curso.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms a ~2.5s
		}, []string{"method", "route"}),
	}
	m.Registry.MustRegister(
		m.inFlight, m.requests, m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Begin marca una petición en curso; llamar al func devuelto al terminar.
func (m *Metrics) Begin() func() {
	m.inFlight.Inc()
	return m.inFlight.Dec
}

// Observe registra una petición terminada.
func (m *Metrics) Observe(method, route, status string, seconds float64) {
	m.requests.WithLabelValues(method, route, status).Inc()
	m.duration.WithLabelValues(method, route).Observe(seconds)
}

// Handler devuelve el handler net/http de exposición.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
