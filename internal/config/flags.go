package config

import (
	"flag"
	"os"
	"time"

	"github.com/eaterapp/eaterauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the credential store database (default from Config)
//	-k string   path to the device key file (default from Config)
//	-n string   credential storage namespace (default from Config)
//	-m int      minimum secret length for sign-up (default from Config)
//	-t int      demo token lifetime in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k", "-n", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "path to the credential store database")
	fs.StringVar(&cfg.KeyFilePath, "k", cfg.KeyFilePath, "path to the device key file")
	fs.StringVar(&cfg.Namespace, "n", cfg.Namespace, "credential storage namespace")
	fs.IntVar(&cfg.MinSecretLength, "m", cfg.MinSecretLength, "minimum secret length for sign-up")
	tokenTTL := fs.Int("t", int(cfg.TokenTTL.Seconds()), "demo token lifetime (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TokenTTL = time.Duration(*tokenTTL) * time.Second
}
