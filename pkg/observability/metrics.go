package observability

import (
	"context"

	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "waypoint"

// Metrics holds the prometheus collectors for navigation events.
type Metrics struct {
	Navigations      *prometheus.CounterVec
	Pops             *prometheus.CounterVec
	ResultsSent      *prometheus.CounterVec
	ResultsDelivered *prometheus.CounterVec
	ResultsDropped   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "navigations_total",
			Help:      "Total number of navigations, by destination route.",
		}, []string{"route"}),
		Pops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "pops_total",
			Help:      "Total number of back stack pops, by popped route.",
		}, []string{"route"}),
		ResultsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "results_sent_total",
			Help:      "Results written for a previous screen.",
		}, []string{"origin", "type"}),
		ResultsDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "results_delivered_total",
			Help:      "Results handed to a listener.",
		}, []string{"origin", "type"}),
		ResultsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "results_dropped_total",
			Help:      "Results discarded before delivery.",
		}, []string{"origin", "type"}),
	}
	if reg != nil {
		reg.MustRegister(m.Navigations, m.Pops, m.ResultsSent, m.ResultsDelivered, m.ResultsDropped)
	}
	return m
}

// Hooks returns hooks that update the collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnNavigate: func(_ context.Context, e *domain.NavigationEvent) {
			m.Navigations.WithLabelValues(e.To).Inc()
		},
		OnPop: func(_ context.Context, e *domain.NavigationEvent) {
			m.Pops.WithLabelValues(e.From).Inc()
		},
		OnResultSent: func(_ context.Context, e *domain.ResultEvent) {
			m.ResultsSent.WithLabelValues(e.Origin, e.TypeID).Inc()
		},
		OnResultDelivered: func(_ context.Context, e *domain.ResultEvent) {
			m.ResultsDelivered.WithLabelValues(e.Origin, e.TypeID).Inc()
		},
		OnResultDropped: func(_ context.Context, e *domain.ResultEvent) {
			m.ResultsDropped.WithLabelValues(e.Origin, e.TypeID).Inc()
		},
	}
}
