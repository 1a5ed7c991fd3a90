package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 8002
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
log_file:
  path: ./data/monitoring.jsonl
upload:
  api_key: secret-upload-key
query:
  max_window_minutes: 20160
  max_limit: 200
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8002, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data/monitoring.jsonl", cfg.LogFile.Path)
	assert.Equal(t, "secret-upload-key", cfg.Upload.APIKey)
	assert.Equal(t, 20160, cfg.Query.MaxWindowMinutes)
	assert.Equal(t, 200, cfg.Query.MaxLimit)
}

func TestLoadConfig_MissingLogFilePath(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 8002
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
upload:
  api_key: secret-upload-key
query:
  max_window_minutes: 20160
  max_limit: 200
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "path")
}

func TestLoadConfig_MissingUploadKey(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 8002
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
log_file:
  path: ./data/monitoring.jsonl
query:
  max_window_minutes: 20160
  max_limit: 200
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/configs.yml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
