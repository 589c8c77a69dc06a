package app

import "net/http"

// MetricsHandler exposes the metrics mux to tests.
func (a *App) MetricsHandler() http.Handler {
	return a.metricsMux()
}
