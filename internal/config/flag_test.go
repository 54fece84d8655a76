package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		expected    Config
	}{
		{
			name: "all flags override defaults",
			args: []string{"cmd", "-d", "/tmp/creds.db", "-k", "/tmp/device.key", "-n", "app.eater.test", "-m", "8", "-t", "60"},
			expected: Config{
				StoragePath:     "/tmp/creds.db",
				KeyFilePath:     "/tmp/device.key",
				Namespace:       "app.eater.test",
				MinSecretLength: 8,
				TokenTTL:        60 * time.Second,
			},
		},
		{
			name: "unset flags keep defaults",
			args: []string{"cmd", "-d", "/tmp/creds.db"},
			expected: Config{
				StoragePath:     "/tmp/creds.db",
				KeyFilePath:     "eater.key",
				Namespace:       "app.eater.client",
				MinSecretLength: 6,
				TokenTTL:        15 * time.Minute,
			},
		},
		{
			name:        "incorrect ttl value",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}
