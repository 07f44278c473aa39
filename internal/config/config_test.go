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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("FullConfig", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 20

[zenoti]
base_url = "https://api.zenoti.example"
api_key = "secret"
timeout = 7
rate_limit_rps = 5.0

[schedule]
window_days = 14
concurrency = 2

[logs]
file = "logs/app.log"
level = "debug"
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.Equal(t, "https://api.zenoti.example", cfg.Zenoti.BaseURL)
		assert.Equal(t, 7, cfg.Zenoti.Timeout)
		assert.Equal(t, 14, cfg.Schedule.WindowDays)
		assert.Equal(t, 2, cfg.Schedule.Concurrency)
		assert.Equal(t, "debug", cfg.Logs.Level)
	})

	t.Run("DefaultsApplied", func(t *testing.T) {
		path := writeConfig(t, `
[zenoti]
base_url = "https://api.zenoti.example"
api_key = "secret"
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.HTTPPort)
		assert.Equal(t, 10, cfg.Schedule.WindowDays)
		assert.Equal(t, 4, cfg.Schedule.Concurrency)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("EnvOverridesAPIKey", func(t *testing.T) {
		path := writeConfig(t, `
[zenoti]
base_url = "https://api.zenoti.example"
api_key = "from-file"
`)
		t.Setenv("ZENOTI_API_KEY", "from-env")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Zenoti.APIKey)
	})

	t.Run("MissingAPIKeyFails", func(t *testing.T) {
		path := writeConfig(t, `
[zenoti]
base_url = "https://api.zenoti.example"
`)

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("MissingFileFails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
