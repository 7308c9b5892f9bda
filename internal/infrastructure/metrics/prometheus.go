// Package metrics expone las métricas de la API en formato Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/practicas-api/internal/application/solicitud"
)

var _ solicitud.Metrics = (*Prometheus)(nil)

// Prometheus agrupa los contadores de negocio y de HTTP sobre un registro propio.
type Prometheus struct {
	reg         *prometheus.Registry
	transitions *prometheus.CounterVec
	mensajes    *prometheus.CounterVec
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// New registra los colectores. namespace suele ser el nombre de la app con guiones bajos.
func New(namespace string) *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Prometheus{
		reg: reg,
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solicitudes_transiciones_total",
			Help:      "Transiciones de estado de las solicitudes de registro de empresa.",
		}, []string{"transicion"}),
		mensajes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solicitudes_mensajes_total",
			Help:      "Mensajes publicados en los hilos de solicitudes.",
		}, []string{"autor"}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (p *Prometheus) SolicitudTransicion(transicion string) {
	p.transitions.WithLabelValues(transicion).Inc()
}

func (p *Prometheus) MensajePublicado(autor string) {
	p.mensajes.WithLabelValues(autor).Inc()
}

// ObserveHTTP registra una petición. route es el patrón de la ruta, no la URL (evita cardinalidad por IDs).
func (p *Prometheus) ObserveHTTP(method, route string, status int, d time.Duration) {
	p.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler endpoint /metrics.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{Registry: p.reg})
}

// Registry para tests.
func (p *Prometheus) Registry() *prometheus.Registry { return p.reg }
