package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/eaterapp/eaterauth/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero values
// mean "not set" and leave the corresponding Config field untouched, so a
// partial JSON file only overrides what it mentions.
type JsonConfig struct {
	StoragePath     string `json:"storage_path"`
	KeyFilePath     string `json:"key_file_path"`
	Namespace       string `json:"namespace"`
	MinSecretLength int    `json:"min_secret_length"`
	TokenTTLSeconds int    `json:"token_ttl_seconds"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JsonConfigFlags);
// when neither is given, no JSON is loaded. Read or unmarshal errors panic,
// same as malformed flags: a broken config file should stop start-up.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.KeyFilePath != "" {
		cfg.KeyFilePath = jc.KeyFilePath
	}
	if jc.Namespace != "" {
		cfg.Namespace = jc.Namespace
	}
	if jc.MinSecretLength > 0 {
		cfg.MinSecretLength = jc.MinSecretLength
	}
	if jc.TokenTTLSeconds > 0 {
		cfg.TokenTTL = time.Duration(jc.TokenTTLSeconds) * time.Second
	}
}
