// Package promstats exports search runs as Prometheus metrics.
//
// A Collector implements core.Observer; install it with core.WithObserver on
// any search:
//
//	reg := prometheus.NewRegistry()
//	stats := promstats.New(reg)
//	sol, err := ucs.Search(space, core.WithObserver(stats))
package promstats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/internal/telemetry"
)

// Collector records search reports into Prometheus instruments.
type Collector struct {
	searches *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// New registers the search instruments on reg and returns a Collector.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "statespace",
			Name:      "searches_total",
			Help:      "Total number of search runs by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),

		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "statespace",
			Name:      "expanded_states",
			Help:      "States expanded per search run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "statespace",
			Name:      "search_duration_seconds",
			Help:      "Wall time of search runs.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 8),
		}, []string{"algorithm"}),
	}
}

// Observe implements core.Observer.
func (c *Collector) Observe(r core.Report) {
	c.searches.WithLabelValues(r.Algorithm, telemetry.Outcome(r.Reachable, r.Err)).Inc()
	c.expanded.WithLabelValues(r.Algorithm).Observe(float64(r.Expanded))
	c.duration.WithLabelValues(r.Algorithm).Observe(r.Duration.Seconds())
}
