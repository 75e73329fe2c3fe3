package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultServerURL, cfg.ServerURL)
	require.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	require.Equal(t, DefaultDataDir, cfg.DataDir)
	require.Equal(t, DefaultRefreshInterval, cfg.RefreshInterval)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server_url: https://bot.example.com
request_timeout_sec: 15
data_dir: /tmp/state
refresh_interval_ms: 2500
log_level: debug
log_file: logs/app.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://bot.example.com", cfg.ServerURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/state", cfg.DataDir)
	require.Equal(t, 2500*time.Millisecond, cfg.RefreshInterval)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "logs/app.log", cfg.LogFile)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: http://from-file\n"), 0o644))

	t.Setenv("GOBOT_SERVER_URL", "http://from-env")
	t.Setenv("GOBOT_REQUEST_TIMEOUT_SEC", "30")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://from-env", cfg.ServerURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: [broken\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateRejectsBadURL(t *testing.T) {
	c := &Config{ServerURL: "ftp://nope"}
	c.ApplyDefaults()
	require.Error(t, c.Validate())
}
