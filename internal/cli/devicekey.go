package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/eaterapp/eaterauth/internal/common"
	"github.com/eaterapp/eaterauth/internal/cryptox"
)

const deviceSecretLength = 32

// loadDeviceKey returns the 32-byte encryption key for the local credential
// store. The key is derived from a random device secret kept in a file at
// path. On first run the secret is generated and written with 0600
// permissions, so the key survives restarts but never leaves the device.
func loadDeviceKey(path string, namespace string) ([]byte, error) {
	secret, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading device secret: %w", err)
		}
		s, err := common.MakeRandHexString(deviceSecretLength)
		if err != nil {
			return nil, fmt.Errorf("generating device secret: %w", err)
		}
		if err := os.WriteFile(path, []byte(s), 0o600); err != nil {
			return nil, fmt.Errorf("saving device secret: %w", err)
		}
		secret = []byte(s)
	}
	secret = []byte(strings.TrimSpace(string(secret)))
	if len(secret) == 0 {
		return nil, fmt.Errorf("device secret file %s is empty", path)
	}
	return cryptox.DeriveKey(secret, []byte(namespace)), nil
}
