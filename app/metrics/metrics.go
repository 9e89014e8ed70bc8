// Package metrics exposes prometheus counters for theme activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/shade/app/enum"
)

// sources of an applied theme
const (
	SourcePage = "page"
	SourceCSS  = "css"
	SourceAPI  = "api"
)

// Metrics holds counters on a private registry, so several instances can live in one process.
type Metrics struct {
	registry *prometheus.Registry
	applied  *prometheus.CounterVec
	toggles  *prometheus.CounterVec
}

// New makes metrics with the given namespace, "shade" if empty.
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = "shade"
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		applied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_applied_total",
			Help:      "Number of times a theme was applied, by mode and source",
		}, []string{"mode", "source"}),
		toggles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Number of theme changes, by resulting mode",
		}, []string{"mode"}),
	}
}

// Applied counts a theme applied for the given source.
func (m *Metrics) Applied(mode enum.ThemeMode, source string) {
	m.applied.WithLabelValues(mode.String(), source).Inc()
}

// Toggled counts a theme change to mode.
func (m *Metrics) Toggled(mode enum.ThemeMode) {
	m.toggles.WithLabelValues(mode.String()).Inc()
}

// Handler returns the exposition handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
