package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "routesynth"

// Metric. prometheus collectors of the routing service.
type Metric struct {
	routesComputed    *prometheus.CounterVec
	candidateRoutes   prometheus.Histogram
	synthesisTopology *prometheus.CounterVec
	annotationSource  *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// NewMetric. registers every collector on reg. nil reg uses a private registry (tests).
func NewMetric(reg prometheus.Registerer) *Metric {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metric{
		routesComputed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_queries_total",
			Help:      "Route queries answered, by route type.",
		}, []string{"route_type"}),
		candidateRoutes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "candidate_routes",
			Help:      "Distinct candidate routes per query.",
			Buckets:   []float64{0, 1, 2, 3},
		}),
		synthesisTopology: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "synthesis_topology_total",
			Help:      "Waypoint synthesis outcomes, by topology.",
		}, []string{"topology"}),
		annotationSource: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "annotation_source_total",
			Help:      "Road/toll annotations, by kind and source.",
		}, []string{"kind", "source"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

func (m *Metric) ObserveQuery(routeType string, candidates int, topology string) {
	m.routesComputed.WithLabelValues(routeType).Inc()
	m.candidateRoutes.Observe(float64(candidates))
	m.synthesisTopology.WithLabelValues(topology).Inc()
}

func (m *Metric) ObserveAnnotation(kind, source string) {
	m.annotationSource.WithLabelValues(kind, source).Inc()
}

func (m *Metric) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	m.httpDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
