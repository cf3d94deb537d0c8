package metrics

import "os"

// DefaultMetricsAddress is used when no listen address is configured.
const DefaultMetricsAddress = ":9090"

type Config struct {
	// Address is the network address the Prometheus scrape endpoint
	// listens on, for example ":9090" or "127.0.0.1:9100".
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// EnableDefaultCollectors registers the built-in Go runtime and
	// process collectors (goroutines, GC, CPU) alongside the SDK's own
	// instruments.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// ServiceName is attached as a "service" label to every metric, so
	// several processes can share one Prometheus cluster.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}

// NewConfig builds a Config from environment variables.
func NewConfig() Config {
	return Config{
		Address:                 getenvDefault("METRICS_ADDRESS", DefaultMetricsAddress),
		EnableDefaultCollectors: os.Getenv("METRICS_ENABLE_DEFAULT_COLLECTORS") != "false",
		ServiceName:             getenvDefault("METRICS_SERVICE_NAME", "vecdb-go"),
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
