package config

import "testing"

// Load is guarded by a package-level sync.Once, so only the first call in
// this test binary actually takes effect; subsequent calls are no-ops. This
// test exercises the default (no Load call yet) path, matching how the
// Nakama module behaves before InitModule runs.
func TestGetHostConfigDefaultsBeforeLoad(t *testing.T) {
	cfg := GetHostConfig()
	if cfg.WorkerPoolSize <= 0 {
		t.Fatalf("WorkerPoolSize = %d, want > 0", cfg.WorkerPoolSize)
	}
	if cfg.JWTSigningKeyEnv == "" {
		t.Fatalf("JWTSigningKeyEnv should not be empty")
	}
	if SessionTTL() <= 0 {
		t.Fatalf("SessionTTL() should be positive")
	}
}

func TestLoadEmptyPathIsANoop(t *testing.T) {
	if err := Load(""); err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
}
