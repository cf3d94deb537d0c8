package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTargetChunkMB, cfg.Upload.TargetChunkMB)
	assert.Equal(t, DefaultMinChunkSize, cfg.Upload.MinChunkSize)
	assert.Equal(t, DefaultMaxWorkers, cfg.Upload.MaxWorkers)
	assert.Equal(t, DefaultRetryChunkMultiplier, cfg.Upload.RetryChunkMultiplier)
	assert.Equal(t, DefaultNumberOfRetries, cfg.Retries.NumberOfRetries)
	assert.Equal(t, DefaultSecondsBetweenRetries, cfg.Retries.SecondsBetweenRetries)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("VECDB_PROJECT", "proj-1")
	t.Setenv("VECDB_API_KEY", "key-1")
	t.Setenv("VECDB_UPLOAD_MAX_WORKERS", "4")
	t.Setenv("VECDB_UPLOAD_RETRY_CHUNK_MULTIPLIER", "0.25")
	t.Setenv("VECDB_RETRIES_NUMBER_OF_RETRIES", "5")

	cfg := NewConfig()

	assert.Equal(t, "proj-1", cfg.Project)
	assert.Equal(t, "key-1", cfg.APIKey)
	assert.Equal(t, 4, cfg.Upload.MaxWorkers)
	assert.Equal(t, 0.25, cfg.Upload.RetryChunkMultiplier)
	assert.Equal(t, 5, cfg.Retries.NumberOfRetries)
	require.NoError(t, cfg.Validate())
}

func TestValidate_MissingCredentials(t *testing.T) {
	cfg := NewConfig()
	cfg.Project = ""
	cfg.APIKey = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VECDB_PROJECT")
}

func TestValidate_BadMultiplier(t *testing.T) {
	cfg := NewConfig()
	cfg.Project = "p"
	cfg.APIKey = "k"
	cfg.Upload.RetryChunkMultiplier = 1.5

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retry chunk multiplier")
}
