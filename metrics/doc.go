// Package metrics exposes Prometheus counters, histograms and gauges for
// world operations: one counter and one duration histogram per operation
// name, plus size gauges for territories, actors and alliances.
package metrics
