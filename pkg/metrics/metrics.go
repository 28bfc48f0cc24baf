// Package metrics counts parsed requests, parse failures and generated
// mutants on a private Prometheus registry. The CLI dumps the registry to a
// node_exporter textfile after each run; long-running embedders can serve
// it with Handler.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/reqforge/reqforge/pkg/httpreq"
	"github.com/reqforge/reqforge/pkg/mutant"
)

const namespace = "reqforge"

// Collector owns the reqforge metric set.
type Collector struct {
	registry *prometheus.Registry

	requestsParsed  prometheus.Counter
	parseErrors     *prometheus.CounterVec
	mutantsTotal    *prometheus.CounterVec
	generateSeconds prometheus.Histogram
}

// New creates a Collector with every metric registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_parsed_total",
			Help:      "Requests parsed successfully",
		}),
		parseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_errors_total",
			Help:      "Request parse failures by reason",
		}, []string{"reason"}),
		mutantsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutants_generated_total",
			Help:      "Mutants generated by kind",
		}, []string{"kind"}),
		generateSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generate_duration_seconds",
			Help:      "Wall time of one Generate call",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
	c.registry.MustRegister(c.requestsParsed, c.parseErrors, c.mutantsTotal, c.generateSeconds)
	return c
}

// Registry exposes the underlying registry for gathering.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveParse records the outcome of one httpreq.Parse call.
func (c *Collector) ObserveParse(err error) {
	if err == nil {
		c.requestsParsed.Inc()
		return
	}
	c.parseErrors.WithLabelValues(ParseReason(err)).Inc()
}

// ObserveGenerate records a finished Generate call.
func (c *Collector) ObserveGenerate(mutants []*mutant.Mutant, elapsed time.Duration) {
	for kind, n := range mutant.CountByKind(mutants) {
		c.mutantsTotal.WithLabelValues(kind.Slug()).Add(float64(n))
	}
	c.generateSeconds.Observe(elapsed.Seconds())
}

// WriteTextfile writes the registry in the text exposition format, suitable
// for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

// Handler serves the registry over HTTP.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ParseReason maps a parse error to a low-cardinality label value.
func ParseReason(err error) string {
	switch {
	case errors.Is(err, httpreq.ErrMalformedRequestLine):
		return "request_line"
	case errors.Is(err, httpreq.ErrInvalidVersion):
		return "version"
	case errors.Is(err, httpreq.ErrInvalidURI):
		return "uri"
	case errors.Is(err, httpreq.ErrInvalidHeaderLine):
		return "header"
	default:
		return "other"
	}
}
