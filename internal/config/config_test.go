package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_BASE_URL_API", "API_FASTAPI_URL", "HTTP_TIMEOUT", "SERVER_PORT",
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_BODY_LIMIT", "LOG_LEVEL", "ENV",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.API.BaseURL)
	assert.Empty(t, cfg.Inference.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.HTTP.Timeout)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 25*1024*1024, cfg.Server.BodyLimit)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "development", cfg.Logger.Env)
}

func TestLoadConfig_Environment(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("API_BASE_URL_API", "http://api.local:5000")
	t.Setenv("API_FASTAPI_URL", "http://inference.local:8000")
	t.Setenv("HTTP_TIMEOUT", "45s")
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://api.local:5000", cfg.API.BaseURL)
	assert.Equal(t, "http://inference.local:8000", cfg.Inference.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_FileAndDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := `
api:
  base_url: http://from-file-api
inference:
  base_url: http://from-file-inference
server:
  port: 7000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("API_FASTAPI_URL=http://from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("API_FASTAPI_URL") })
	// godotenv never overrides variables that are already set
	os.Unsetenv("API_FASTAPI_URL")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://from-file-api", cfg.API.BaseURL)
	assert.Equal(t, "http://from-dotenv", cfg.Inference.BaseURL)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api: [unterminated"), 0o600))

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
