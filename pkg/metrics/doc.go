// Package metrics exposes the SDK's Prometheus instruments.
//
// It holds a private registry (no global state leaks into the host
// application) and an HTTP server serving it for scraping. The bulk
// writer's counters and gauges are registered on the registry via
// bulk.NewCollectors; everything carries a "service" label taken from
// the configuration.
package metrics
