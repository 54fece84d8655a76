// Package config loads runtime configuration for the Eater client CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the credential store database
//	-k string   path to the device key file
//	-n string   credential storage namespace
//	-m int      minimum secret length for sign-up
//	-t int      demo token lifetime (seconds)
//
// # JSON schema
//
//	{
//	  "storage_path": "eater.db",
//	  "key_file_path": "eater.key",
//	  "namespace": "app.eater.client",
//	  "min_secret_length": 6,
//	  "token_ttl_seconds": 900
//	}
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config
