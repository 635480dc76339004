// Package viewmetrics exports views.Router activity as Prometheus metrics.
//
//	obs := viewmetrics.New(viewmetrics.Config{Registry: reg})
//	r := views.NewRouter().Observer(obs)
//
// Metrics:
//
//	viewkit_route_resolutions_total{result}   ok, unknown_view, unmatched_parameter, error
//	viewkit_navigations_total{view,outcome}   navigated, skipped
//	viewkit_title_updates_total{view}
package viewmetrics
