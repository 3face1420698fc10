package nakama

import (
	"context"
	"database/sql"
	"os"

	"ticketroute/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires the create-game and session-token RPCs and registers the
// match handler with the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env := envFromCtx(ctx)
	if err := config.Load(envOrOs(env, "TICKETROUTE_CONFIG_PATH")); err != nil {
		return err
	}

	if err := initializer.RegisterRpc(RpcIDCreateGame, RpcCreateGame); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcIDGetSessionToken, RpcGetSessionToken); err != nil {
		return err
	}
	if err := initializer.RegisterMatch(MatchNameTicketRoute, NewMatch); err != nil {
		return err
	}

	logger.Info("ticket route Go module loaded.")
	return nil
}

func envFromCtx(ctx context.Context) map[string]string {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	return env
}

func envOrOs(env map[string]string, key string) string {
	if value, ok := env[key]; ok && value != "" {
		return value
	}
	return os.Getenv(key)
}
