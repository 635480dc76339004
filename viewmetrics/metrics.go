package viewmetrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vitalvas/viewkit/views"
)

// Config configures the Prometheus observer.
type Config struct {
	// Namespace is the metrics namespace. Defaults to "viewkit" when empty.
	Namespace string

	// Subsystem is the metrics subsystem.
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the registry the metrics are registered with.
	// Defaults to prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Observer records router activity as Prometheus metrics. It implements
// views.Observer.
type Observer struct {
	resolutions  *prometheus.CounterVec
	navigations  *prometheus.CounterVec
	titleUpdates *prometheus.CounterVec
}

var _ views.Observer = (*Observer)(nil)

// New creates the metrics and registers them with cfg.Registry. It panics
// if the metrics are already registered there, like promauto does.
func New(cfg Config) *Observer {
	if cfg.Namespace == "" {
		cfg.Namespace = "viewkit"
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(cfg.Registry)

	return &Observer{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "route_resolutions_total",
			Help:        "Total number of reverse route resolutions by result",
			ConstLabels: cfg.ConstLabels,
		}, []string{"result"}),

		navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of view navigations by view and outcome",
			ConstLabels: cfg.ConstLabels,
		}, []string{"view", "outcome"}),

		titleUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "title_updates_total",
			Help:        "Total number of page title updates by view",
			ConstLabels: cfg.ConstLabels,
		}, []string{"view"}),
	}
}

// ResolvedRoute counts a resolution. The view name is not used as a label
// since unknown view names are unbounded.
func (o *Observer) ResolvedRoute(_ string, err error) {
	o.resolutions.WithLabelValues(resultLabel(err)).Inc()
}

// Navigated counts a navigation.
func (o *Observer) Navigated(view, _ string, skipped bool) {
	outcome := "navigated"
	if skipped {
		outcome = "skipped"
	}
	o.navigations.WithLabelValues(view, outcome).Inc()
}

// TitleUpdated counts a title update.
func (o *Observer) TitleUpdated(view, _ string) {
	o.titleUpdates.WithLabelValues(view).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, views.ErrUnknownView):
		return "unknown_view"
	case errors.Is(err, views.ErrUnmatchedParameter):
		return "unmatched_parameter"
	}
	return "error"
}
