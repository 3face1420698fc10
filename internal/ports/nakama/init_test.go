package nakama

import (
	"context"
	"testing"
)

func TestEnvOrOsPrefersInjectedEnv(t *testing.T) {
	env := map[string]string{"TICKETROUTE_TEST_KEY": "from-env-map"}
	if got := envOrOs(env, "TICKETROUTE_TEST_KEY"); got != "from-env-map" {
		t.Fatalf("envOrOs() = %q, want %q", got, "from-env-map")
	}
}

func TestEnvOrOsFallsBackToProcessEnv(t *testing.T) {
	t.Setenv("TICKETROUTE_TEST_KEY_OS", "from-os-env")
	if got := envOrOs(nil, "TICKETROUTE_TEST_KEY_OS"); got != "from-os-env" {
		t.Fatalf("envOrOs() = %q, want %q", got, "from-os-env")
	}
}

func TestEnvOrOsEmptyInjectedValueFallsThrough(t *testing.T) {
	t.Setenv("TICKETROUTE_TEST_KEY_EMPTY", "from-os-env")
	env := map[string]string{"TICKETROUTE_TEST_KEY_EMPTY": ""}
	if got := envOrOs(env, "TICKETROUTE_TEST_KEY_EMPTY"); got != "from-os-env" {
		t.Fatalf("envOrOs() = %q, want %q", got, "from-os-env")
	}
}

func TestEnvFromCtxMissingKey(t *testing.T) {
	if got := envFromCtx(context.Background()); got != nil {
		t.Fatalf("envFromCtx() = %v, want nil", got)
	}
}
