package config

import "time"

// Config holds runtime settings for the Eater client session core.
//
// Fields:
//   - StoragePath: path to the SQLite file backing the credential store.
//   - KeyFilePath: path to the device key file the store key is derived from.
//   - Namespace: logical scope for credential entries; lets several apps
//     share one storage medium without seeing each other's secrets.
//   - MinSecretLength: sign-up password policy.
//   - TokenTTL: lifetime of tokens minted by the demo authenticator.
type Config struct {
	StoragePath     string
	KeyFilePath     string
	Namespace       string
	MinSecretLength int
	TokenTTL        time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoragePath = "eater.db"
	c.KeyFilePath = "eater.key"
	c.Namespace = "app.eater.client"
	c.MinSecretLength = 6
	c.TokenTTL = 15 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
