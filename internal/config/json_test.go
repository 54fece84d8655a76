package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("full file overrides everything", func(t *testing.T) {
		path := writeConfigFile(t, `{
  "storage_path": "/data/creds.db",
  "key_file_path": "/data/device.key",
  "namespace": "app.eater.json",
  "min_secret_length": 10,
  "token_ttl_seconds": 120
}`)
		os.Args = []string{"cmd", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "/data/creds.db", cfg.StoragePath)
		assert.Equal(t, "/data/device.key", cfg.KeyFilePath)
		assert.Equal(t, "app.eater.json", cfg.Namespace)
		assert.Equal(t, 10, cfg.MinSecretLength)
		assert.Equal(t, 2*time.Minute, cfg.TokenTTL)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		path := writeConfigFile(t, `{"namespace": "app.eater.partial"}`)
		os.Args = []string{"cmd", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "app.eater.partial", cfg.Namespace)
		assert.Equal(t, "eater.db", cfg.StoragePath)
		assert.Equal(t, 6, cfg.MinSecretLength)
	})

	t.Run("no config flag is a no-op", func(t *testing.T) {
		os.Args = []string{"cmd"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "eater.db", cfg.StoragePath)
	})

	t.Run("malformed file panics", func(t *testing.T) {
		path := writeConfigFile(t, `{not json`)
		os.Args = []string{"cmd", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"cmd", "-c", "/nonexistent/config.json"}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseJson(cfg) })
	})
}
