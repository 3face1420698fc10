package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"ticketroute/internal/config"
	"ticketroute/internal/session"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RpcCreateGame allocates a fresh authoritative match and returns its id,
// the Nakama analogue of "POST /create — allocate game; redirect to
// /game/<uuid>".
func RpcCreateGame(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	matchID, err := nk.MatchCreate(ctx, MatchNameTicketRoute, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create match: %w", err)
	}

	resp, err := json.Marshal(map[string]string{"match_id": matchID})
	if err != nil {
		return "", err
	}
	return string(resp), nil
}

type getSessionTokenRequest struct {
	MatchID string `json:"match_id"`
}

type getSessionTokenResponse struct {
	Token string `json:"token"`
}

// RpcGetSessionToken mints the host-signed session token a client presents
// on subsequent HTTP-collaborator requests, binding it to the caller's
// (game_id, player_id). The player_id is resolved by signaling into the
// running match, since it is the match handler's authoritative bookkeeping
// that assigns player identities on join.
func RpcGetSessionToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("invalid context: missing user id")
	}

	var req getSessionTokenRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	if req.MatchID == "" {
		return "", fmt.Errorf("match_id is required")
	}

	signal, err := json.Marshal(signalRequest{Op: "get_player_id", UserID: userID})
	if err != nil {
		return "", err
	}
	signalResp, err := nk.MatchSignal(ctx, req.MatchID, string(signal))
	if err != nil {
		return "", fmt.Errorf("failed to signal match: %w", err)
	}

	var playerIDResp struct {
		PlayerID int64  `json:"player_id"`
		Error    string `json:"error"`
	}
	if err := json.Unmarshal([]byte(signalResp), &playerIDResp); err != nil {
		return "", fmt.Errorf("failed to parse match signal response: %w", err)
	}
	if playerIDResp.Error != "" {
		return "", fmt.Errorf("match signal: %s", playerIDResp.Error)
	}

	signingKey := envOrOs(envFromCtx(ctx), config.GetHostConfig().JWTSigningKeyEnv)
	token, err := session.Mint([]byte(signingKey), session.Claims{
		GameID:   req.MatchID,
		PlayerID: playerIDResp.PlayerID,
	}, config.SessionTTL())
	if err != nil {
		return "", fmt.Errorf("failed to mint session token: %w", err)
	}

	resp, err := json.Marshal(getSessionTokenResponse{Token: token})
	if err != nil {
		return "", err
	}
	return string(resp), nil
}
