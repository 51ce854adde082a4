package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  mode: production
perplexity:
  apiKey: file-key
  model: llama-3.1-sonar-small
  maxRetries: 5
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "file-key", cfg.Perplexity.ApiKey)
	assert.Equal(t, 5, cfg.Perplexity.MaxRetries)
}

func TestLoadConfigEnvOverridesKey(t *testing.T) {
	t.Setenv("PERPLEXITY_API_KEY", "env-key")
	path := writeConfig(t, "perplexity:\n  apiKey: file-key\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Perplexity.ApiKey)
	// default port applies when unset
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
