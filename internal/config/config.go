// Package config loads the host-level knobs that sit outside the game-logic
// core: the size of the process-wide longest-route worker pool and the
// lifetime of issued session tokens.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// HostConfig is the JSON-configurable surface the Nakama host reads once at
// module load.
type HostConfig struct {
	WorkerPoolSize    int    `json:"worker_pool_size"`
	SessionTTLSeconds int64  `json:"session_ttl_seconds"`
	JWTSigningKeyEnv  string `json:"jwt_signing_key_env"`
}

var (
	cfg      *HostConfig
	loadOnce sync.Once
	loadErr  error
)

// defaultConfig is used whenever no config file is supplied; it keeps local
// development and tests working without a config.json on disk.
func defaultConfig() *HostConfig {
	return &HostConfig{
		WorkerPoolSize:    4,
		SessionTTLSeconds: int64((2 * time.Hour).Seconds()),
		JWTSigningKeyEnv:  "TICKETROUTE_SESSION_SIGNING_KEY",
	}
}

// Load reads the host configuration from path. An empty path loads the
// built-in defaults. Subsequent calls are no-ops; the first call's result
// (success or error) is cached for GetHostConfig.
func Load(path string) error {
	loadOnce.Do(func() {
		if path == "" {
			cfg = defaultConfig()
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("config: failed to read host config: %w", err)
			return
		}
		c := defaultConfig()
		if err := json.Unmarshal(data, c); err != nil {
			loadErr = fmt.Errorf("config: failed to unmarshal host config: %w", err)
			return
		}
		cfg = c
	})
	return loadErr
}

// GetHostConfig returns the loaded configuration, or built-in defaults if
// Load was never called.
func GetHostConfig() *HostConfig {
	if cfg == nil {
		return defaultConfig()
	}
	return cfg
}

// SessionTTL returns the configured session token lifetime.
func SessionTTL() time.Duration {
	return time.Duration(GetHostConfig().SessionTTLSeconds) * time.Second
}
