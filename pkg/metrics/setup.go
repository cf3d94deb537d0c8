package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Logger defines the interface for logging operations in the metrics package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=metrics
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Metrics owns the Prometheus registry the SDK's instruments register
// against, plus the HTTP server exposing it for scraping. The bulk
// writer's collectors hang off Registry; applications embedding the SDK
// can register their own collectors on it as well.
type Metrics struct {
	Server      *http.Server
	Registry    *prometheus.Registry
	logger      Logger
	serviceName string
}

// NewMetrics creates the registry and the scrape server. The server is
// not started; use the Fx module or run Server.ListenAndServe yourself.
func NewMetrics(cfg Config, logger Logger) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	return &Metrics{
		Server:      server,
		Registry:    registry,
		logger:      logger,
		serviceName: cfg.ServiceName,
	}
}
