package nakama

const (
	// MatchNameTicketRoute is the authoritative match handler name registered
	// with Nakama.
	MatchNameTicketRoute = "ticketroute_match"

	// RpcIDCreateGame is the Nakama RPC id clients call to allocate a new game.
	RpcIDCreateGame = "create_game"

	// RpcIDGetSessionToken is the Nakama RPC id clients call to mint a
	// host-signed session token bound to their assigned player in a match.
	RpcIDGetSessionToken = "get_session_token"
)

// Op codes for client actions and server broadcasts, mirroring the action
// endpoint table in the external interfaces section.
const (
	// Client -> Server
	OpChangeName             int64 = 1
	OpChangeColor            int64 = 2
	OpSetReady               int64 = 3
	OpDrawDestinationCards   int64 = 4
	OpSelectDestinationCards int64 = 5
	OpDrawOpenTrainCard      int64 = 6
	OpDrawCloseTrainCard     int64 = 7
	OpClaimRoute             int64 = 8

	// Server -> Client
	OpActionResult int64 = 100
	OpStateUpdate  int64 = 101
)
