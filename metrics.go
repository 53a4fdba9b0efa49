package gridpath

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeFound       = "found"
	outcomeUnreachable = "unreachable"
	outcomeTruncated   = "truncated"
	outcomeError       = "error"
)

// Metrics records planning outcomes.
type Metrics struct {
	plans         *prometheus.CounterVec
	expandedNodes *prometheus.HistogramVec
	routeLength   *prometheus.HistogramVec
}

// NewMetrics creates the planner collectors and registers them with registerer.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		plans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridpath",
			Name:      "plans_total",
			Help:      "Number of plan calls by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		expandedNodes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "expanded_nodes",
			Help:      "Cells expanded per plan call.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"strategy"}),
		routeLength: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "route_length",
			Help:      "Cells in the planned route, zero when none was found.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"strategy"}),
	}
	for _, collector := range []prometheus.Collector{m.plans, m.expandedNodes, m.routeLength} {
		if err := registerer.Register(collector); err != nil {
			return nil, errors.Wrap(err, "register planner metrics")
		}
	}
	return m, nil
}

func (m *Metrics) observePlan(strategy Strategy, result Result[Cell]) {
	if m == nil {
		return
	}
	outcome := outcomeUnreachable
	switch {
	case result.Found:
		outcome = outcomeFound
	case result.Truncated:
		outcome = outcomeTruncated
	}
	m.plans.WithLabelValues(strategy.String(), outcome).Inc()
	m.expandedNodes.WithLabelValues(strategy.String()).Observe(float64(result.ExpandedNodes))
	m.routeLength.WithLabelValues(strategy.String()).Observe(float64(len(result.Path)))
}

func (m *Metrics) observeError(strategy Strategy) {
	if m == nil {
		return
	}
	m.plans.WithLabelValues(strategy.String(), outcomeError).Inc()
}
