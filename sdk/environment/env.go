// Package environment provides support for env vars and configuration
// loading with namespacing and defaults.
package environment

import (
	"fmt"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file at the specified
// path. An empty path falls back to .env in the working directory.
func LoadEnv(p string) error {
	if p != "" {
		return godotenv.Load(p)
	}
	return godotenv.Load()
}

// GetEnvKeyPrefix constructs a namespaced environment variable key by
// joining the prefix and key with an underscore. An empty prefix returns
// the key unchanged.
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}
