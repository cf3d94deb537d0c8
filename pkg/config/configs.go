package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults mirroring the service's documented client settings.
const (
	DefaultBaseURL = "https://api.vecdb.ai/v1"

	DefaultTargetChunkMB        = 20
	DefaultMinChunkSize         = 8
	DefaultMaxWorkers           = 8
	DefaultRetryChunkMultiplier = 0.5

	DefaultNumberOfRetries       = 3
	DefaultSecondsBetweenRetries = 2

	DefaultHTTPTimeoutSeconds = 30
)

// Upload holds the chunk sizing and concurrency settings for bulk writes.
type Upload struct {
	// TargetChunkMB is the serialized payload budget per chunk, in megabytes.
	TargetChunkMB int `yaml:"target_chunk_mb" envconfig:"VECDB_UPLOAD_TARGET_CHUNK_MB"`

	// MinChunkSize is the floor applied to the auto-probed chunk size.
	MinChunkSize int `yaml:"min_chunk_size" envconfig:"VECDB_UPLOAD_MIN_CHUNK_SIZE"`

	// MaxWorkers bounds the number of chunk writes in flight at once.
	MaxWorkers int `yaml:"max_workers" envconfig:"VECDB_UPLOAD_MAX_WORKERS"`

	// RetryChunkMultiplier shrinks the chunk size on overload signals.
	// Must be in (0, 1).
	RetryChunkMultiplier float64 `yaml:"retry_chunk_multiplier" envconfig:"VECDB_UPLOAD_RETRY_CHUNK_MULTIPLIER"`
}

// Retries holds the retry-loop settings shared by all bulk operations.
type Retries struct {
	// NumberOfRetries is the total number of write passes, including the first.
	NumberOfRetries int `yaml:"number_of_retries" envconfig:"VECDB_RETRIES_NUMBER_OF_RETRIES"`

	// SecondsBetweenRetries is the backoff slept between passes.
	SecondsBetweenRetries int `yaml:"seconds_between_retries" envconfig:"VECDB_RETRIES_SECONDS_BETWEEN_RETRIES"`
}

// Config carries the credentials and tuning knobs for the SDK.
//
// It is passed explicitly into client and writer constructors; nothing in
// this module reads process-wide mutable state after construction.
type Config struct {
	// Project identifies the account on the hosted service.
	Project string `yaml:"project" envconfig:"VECDB_PROJECT"`

	// APIKey authenticates requests alongside Project.
	APIKey string `yaml:"api_key" envconfig:"VECDB_API_KEY"`

	// BaseURL is the service endpoint, without a trailing slash.
	BaseURL string `yaml:"base_url" envconfig:"VECDB_BASE_URL"`

	// HTTPTimeoutSeconds bounds each individual HTTP call.
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds" envconfig:"VECDB_HTTP_TIMEOUT_SECONDS"`

	Upload  Upload  `yaml:"upload"`
	Retries Retries `yaml:"retries"`
}

// NewConfig reads from environment (no extra deps) and applies defaults.
func NewConfig() *Config {
	return &Config{
		Project:            os.Getenv("VECDB_PROJECT"),
		APIKey:             os.Getenv("VECDB_API_KEY"),
		BaseURL:            getenvDefault("VECDB_BASE_URL", DefaultBaseURL),
		HTTPTimeoutSeconds: getenvInt("VECDB_HTTP_TIMEOUT_SECONDS", DefaultHTTPTimeoutSeconds),
		Upload: Upload{
			TargetChunkMB:        getenvInt("VECDB_UPLOAD_TARGET_CHUNK_MB", DefaultTargetChunkMB),
			MinChunkSize:         getenvInt("VECDB_UPLOAD_MIN_CHUNK_SIZE", DefaultMinChunkSize),
			MaxWorkers:           getenvInt("VECDB_UPLOAD_MAX_WORKERS", DefaultMaxWorkers),
			RetryChunkMultiplier: getenvFloat("VECDB_UPLOAD_RETRY_CHUNK_MULTIPLIER", DefaultRetryChunkMultiplier),
		},
		Retries: Retries{
			NumberOfRetries:       getenvInt("VECDB_RETRIES_NUMBER_OF_RETRIES", DefaultNumberOfRetries),
			SecondsBetweenRetries: getenvInt("VECDB_RETRIES_SECONDS_BETWEEN_RETRIES", DefaultSecondsBetweenRetries),
		},
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getenvFloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return def
}

func (c *Config) Validate() error {
	if c.Project == "" {
		return fmt.Errorf("config: VECDB_PROJECT is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("config: VECDB_API_KEY is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("config: VECDB_BASE_URL cannot be empty")
	}
	if c.Upload.RetryChunkMultiplier <= 0 || c.Upload.RetryChunkMultiplier >= 1 {
		return fmt.Errorf("config: retry chunk multiplier must be in (0, 1), got %v", c.Upload.RetryChunkMultiplier)
	}
	return nil
}
