package tracer

import "os"

// DefaultServiceName is used when no service name is configured.
const DefaultServiceName = "vecdb-go"

type Config struct {
	// ServiceName is attached to every exported span as the
	// service.name resource attribute.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv tags spans with the deployment environment, for example
	// "development" or "production".
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport controls whether spans are shipped to an OTLP
	// collector over HTTP. When false the provider is still installed
	// so span creation stays cheap and callers need no nil checks,
	// but nothing leaves the process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}

// NewConfig builds a Config from environment variables.
func NewConfig() Config {
	return Config{
		ServiceName:  getenvDefault("TRACER_SERVICE_NAME", DefaultServiceName),
		AppEnv:       getenvDefault("TRACER_APP_ENV", "development"),
		EnableExport: os.Getenv("TRACER_ENABLE_EXPORT") == "true",
	}
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
