package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"time"

	cm "ticketroute/internal/citymap"
	"ticketroute/internal/manager"
	"ticketroute/internal/player"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// matchState holds the authoritative runtime state for one game's match
// handler: the manager that owns all game logic, plus the Nakama-specific
// presence and identity bookkeeping the manager has no notion of.
type matchState struct {
	Manager *manager.Manager

	Presences        map[string]runtime.Presence // user_id -> presence
	PlayerIDByUserID map[string]player.ID
	UserIDByPlayerID map[player.ID]string

	GameID     string
	SigningKey []byte
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	signingKey := envOrOs(env, "TICKETROUTE_SESSION_SIGNING_KEY")

	gameID, _ := params["game_id"].(string)
	if gameID == "" {
		gameID = uuid.NewString()
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := &matchState{
		Manager:          manager.New(getSharedPool(), rng),
		Presences:        make(map[string]runtime.Presence),
		PlayerIDByUserID: make(map[string]player.ID),
		UserIDByPlayerID: make(map[player.ID]string),
		GameID:           gameID,
		SigningKey:       []byte(signingKey),
	}

	label, err := json.Marshal(map[string]string{"phase": string(state.Manager.Phase())})
	if err != nil {
		logger.Error("MatchInit: failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(label)
}

// MatchJoinAttempt allows a join unless the game has left the lobby and the
// joiner is not already one of its players (a reconnect).
func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	ms, ok := state.(*matchState)
	if !ok {
		return state, false, "state not found"
	}

	if ms.Manager.Phase() != manager.PhaseInLobby {
		if _, known := ms.PlayerIDByUserID[presence.GetUserId()]; !known {
			return state, false, "game already started"
		}
	}

	return state, true, ""
}

// MatchJoin assigns a fresh player to every first-time joiner and re-attaches
// presences for reconnecting ones, then broadcasts the resulting state.
func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	ms, ok := state.(*matchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		ms.Presences[p.GetUserId()] = p

		if _, known := ms.PlayerIDByUserID[p.GetUserId()]; known {
			continue
		}

		newPlayer, err := ms.Manager.AddPlayer()
		if err != nil {
			logger.Warn("MatchJoin: user %s could not be added: %v", p.GetUserId(), err)
			continue
		}
		ms.PlayerIDByUserID[p.GetUserId()] = newPlayer.ID
		ms.UserIDByPlayerID[newPlayer.ID] = p.GetUserId()
	}

	mh.broadcastGameState(ms, dispatcher, logger)
	return ms
}

// MatchLeave drops the leaving presences from the connected set. The
// underlying player stays part of the game; ticket route has no concept of
// a player quitting mid-game, only of disconnecting and reconnecting.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	ms, ok := state.(*matchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(ms.Presences, p.GetUserId())
	}

	if len(ms.Presences) == 0 && ms.Manager.Phase() == manager.PhaseInLobby {
		logger.Info("MatchLeave: lobby emptied, terminating match %s", ms.GameID)
		return nil
	}

	return ms
}

// MatchLoop dispatches every client action opcode to the manager and echoes
// back a uniform action result, then broadcasts fresh per-viewer state to
// every connected presence whenever the action mutated the game.
func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	ms, ok := state.(*matchState)
	if !ok {
		return state
	}

	for _, msg := range messages {
		if mh.handleMessage(ms, dispatcher, logger, msg) {
			mh.broadcastGameState(ms, dispatcher, logger)
		}
	}

	return ms
}

// handleMessage processes one opcode and reports whether the action
// succeeded (and therefore changed the game's state).
func (mh *matchHandler) handleMessage(ms *matchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) bool {
	pid, ok := ms.PlayerIDByUserID[msg.GetUserId()]
	if !ok {
		mh.respond(ms, dispatcher, msg.GetUserId(), errorResponse(manager.ErrUnknownPlayer))
		return false
	}

	var err error
	switch msg.GetOpCode() {
	case OpChangeName:
		var req changeNameRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			err = ms.Manager.ChangeName(pid, req.NewName)
		}
	case OpChangeColor:
		var req changeColorRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			var color player.Color
			if color, err = toColor(req.NewColor); err == nil {
				err = ms.Manager.ChangeColor(pid, color)
			}
		}
	case OpSetReady:
		var req setReadyRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			err = ms.Manager.SetReady(pid, req.IsReady)
		}
	case OpDrawDestinationCards:
		_, err = ms.Manager.DrawDestinationCards(pid)
	case OpSelectDestinationCards:
		var req selectDestinationCardsRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			if ms.Manager.Phase() == manager.PhaseStarting {
				err = ms.Manager.SelectInitialDestinations(pid, req.Decisions)
			} else {
				err = ms.Manager.SelectDestinationCards(pid, req.Decisions)
			}
		}
	case OpDrawOpenTrainCard:
		var req drawOpenTrainCardRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			_, err = ms.Manager.DrawOpenTrainCard(pid, req.CardIndex)
		}
	case OpDrawCloseTrainCard:
		_, err = ms.Manager.DrawCloseTrainCard(pid)
	case OpClaimRoute:
		var req claimRouteRequest
		if err = json.Unmarshal(msg.GetData(), &req); err == nil {
			var hand []cm.TrainColor
			if hand, err = toHand(req.Cards); err == nil {
				_, err = ms.Manager.ClaimRoute(pid, toPair(req.Route), req.ParallelRouteIndex, hand)
			}
		}
	default:
		logger.Warn("MatchLoop: unknown opcode %d from %s", msg.GetOpCode(), msg.GetUserId())
		return false
	}

	if err != nil {
		mh.respond(ms, dispatcher, msg.GetUserId(), errorResponse(err))
		return false
	}
	mh.respond(ms, dispatcher, msg.GetUserId(), successResponse())
	return true
}

func (mh *matchHandler) respond(ms *matchState, dispatcher runtime.MatchDispatcher, userID string, resp actionResponse) {
	presence, ok := ms.Presences[userID]
	if !ok {
		return
	}
	bytes, err := json.Marshal(resp)
	if err != nil {
		return
	}
	dispatcher.BroadcastMessage(OpActionResult, bytes, []runtime.Presence{presence}, nil, true)
}

// broadcastGameState sends each connected presence its own viewer-scoped
// projection, since private hand and destination-card fields differ per
// viewer.
func (mh *matchHandler) broadcastGameState(ms *matchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for userID, presence := range ms.Presences {
		pid, ok := ms.PlayerIDByUserID[userID]
		if !ok {
			continue
		}
		gs := ms.Manager.GetState(pid)
		bytes, err := json.Marshal(gs)
		if err != nil {
			logger.Error("broadcastGameState: failed to marshal state for %s: %v", userID, err)
			continue
		}
		dispatcher.BroadcastMessage(OpStateUpdate, bytes, []runtime.Presence{presence}, nil, true)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: match %v terminated for reason %d", state, reason)
	return state
}

// signalRequest is the payload shape accepted by MatchSignal, used by the
// session-token RPC to resolve a user's player_id without exposing the
// manager outside the match goroutine.
type signalRequest struct {
	Op     string `json:"op"`
	UserID string `json:"user_id"`
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	ms, ok := state.(*matchState)
	if !ok {
		return state, `{"error":"state not found"}`
	}

	var req signalRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return state, `{"error":"invalid signal payload"}`
	}

	switch req.Op {
	case "get_player_id":
		pid, known := ms.PlayerIDByUserID[req.UserID]
		if !known {
			return state, `{"error":"unknown player"}`
		}
		resp, _ := json.Marshal(map[string]int{"player_id": int(pid)})
		return state, string(resp)
	case "get_state":
		pid, known := ms.PlayerIDByUserID[req.UserID]
		if !known {
			return state, `{"error":"unknown player"}`
		}
		resp, _ := json.Marshal(ms.Manager.GetState(pid))
		return state, string(resp)
	default:
		return state, "{}"
	}
}
