package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "zero attempts",
			mutate:  func(c *Config) { c.Fetch.MaxAttempts = 0 },
			wantErr: "max_attempts",
		},
		{
			name:    "zero base delay",
			mutate:  func(c *Config) { c.Fetch.BaseDelay = 0 },
			wantErr: "base_delay",
		},
		{
			name:    "max delay below base delay",
			mutate:  func(c *Config) { c.Fetch.MaxDelay = c.Fetch.BaseDelay / 2 },
			wantErr: "max_delay",
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *Config) { c.Fetch.RequestTimeout = 0 },
			wantErr: "request_timeout",
		},
		{
			name:    "negative host interval",
			mutate:  func(c *Config) { c.Fetch.HostInterval = -time.Second },
			wantErr: "host_interval",
		},
		{
			name:    "zero max pages",
			mutate:  func(c *Config) { c.Crawl.MaxPages = 0 },
			wantErr: "max_pages",
		},
		{
			name:    "unknown engine",
			mutate:  func(c *Config) { c.Extract.Engine = "llm" },
			wantErr: "engine",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Runner.Concurrency = 0 },
			wantErr: "concurrency",
		},
		{
			name:    "unknown export format",
			mutate:  func(c *Config) { c.Export.Formats = []string{"json", "yaml"} },
			wantErr: "format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Fetch.MaxAttempts)
	assert.Equal(t, "rules", cfg.Extract.Engine)
	assert.Equal(t, []string{"json"}, cfg.Export.Formats)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
fetch:
  max_attempts: 5
  base_delay: 1s
extract:
  engine: prose
export:
  formats: [csv, xlsx]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Fetch.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Fetch.BaseDelay)
	assert.Equal(t, "prose", cfg.Extract.Engine)
	assert.Equal(t, []string{"csv", "xlsx"}, cfg.Export.Formats)

	// Untouched sections keep their defaults.
	assert.Equal(t, 3, cfg.Crawl.MaxPages)
	assert.Equal(t, 4, cfg.Runner.Concurrency)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("SIFT_FETCH_MAX_ATTEMPTS", "7")
	t.Setenv("SIFT_EXTRACT_ENGINE", "prose")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Fetch.MaxAttempts)
	assert.Equal(t, "prose", cfg.Extract.Engine)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_MalformedSearchPathFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fetch: [not: a map"), 0o644))
	t.Chdir(dir)

	_, err := Load(viper.New(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
	assert.Contains(t, err.Error(), "config.yaml")
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fetch:\n  max_attempts: 0\n"), 0o644))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
