package manager

import (
	"ticketroute/internal/cards"
	cm "ticketroute/internal/citymap"
	"ticketroute/internal/player"
	"ticketroute/internal/routemap"
)

// DealerDigest is the public view of the card dealer: the open deck's
// contents (nil entries for empty slots) plus the sizes of the other three
// decks, which never reveal their contents to any viewer.
type DealerDigest struct {
	Open                  [cards.OpenSlots]*cm.TrainColor `json:"open"`
	ClosedCount           int                              `json:"closed_count"`
	DiscardCount          int                              `json:"discard_count"`
	DestinationsRemaining int                              `json:"destinations_remaining"`
}

// PlayerPublicState is the subset of a player's state visible to every viewer.
type PlayerPublicState struct {
	ID              player.ID               `json:"id"`
	Name            string                  `json:"name"`
	Color           player.Color            `json:"color"`
	IsReady         bool                    `json:"is_ready"`
	IsDonePlaying   bool                    `json:"is_done_playing"`
	HasLongestRoute bool                    `json:"has_longest_route"`
	Cars            int                     `json:"cars"`
	Points          int                     `json:"points"`
	NumTrainCards   int                     `json:"num_train_cards"`
	ClaimedRoutes   []routemap.ClaimedRoute `json:"claimed_routes"`
	TurnActions     []player.TurnLog        `json:"turn_actions"`
}

// PlayerPrivateState is visible only to the player it belongs to.
type PlayerPrivateState struct {
	TrainCards               map[cm.TrainColor]int   `json:"train_cards"`
	PendingDestinationCards  []cm.DestinationCard    `json:"pending_destination_cards"`
	SelectedDestinationCards []cm.DestinationCard    `json:"selected_destination_cards"`
}

// PlayerState bundles one player's public state with its private state,
// present only when the viewer is that player.
type PlayerState struct {
	PlayerPublicState
	Private *PlayerPrivateState `json:"private,omitempty"`
}

// GameState is the full viewer-scoped projection returned by GetState.
type GameState struct {
	Phase   Phase         `json:"phase"`
	Turn    *int          `json:"turn"`
	Dealer  DealerDigest  `json:"dealer"`
	Players []PlayerState `json:"players"`
}

// GetState assembles the projection of the game as seen by viewerID: public
// fields for every player, private fields only for the viewer themself.
func (m *Manager) GetState(viewerID player.ID) GameState {
	state := GameState{
		Phase:   m.phase,
		Turn:    m.turn,
		Players: make([]PlayerState, 0, len(m.players)),
	}

	if m.dealer != nil {
		open := m.dealer.OpenDeck()
		state.Dealer = DealerDigest{
			Open:                  open,
			ClosedCount:           m.dealer.ClosedCount(),
			DiscardCount:          m.dealer.DiscardCount(),
			DestinationsRemaining: m.dealer.DestinationsRemaining(),
		}
	}

	for _, p := range m.players {
		ps := PlayerState{PlayerPublicState: PlayerPublicState{
			ID:              p.ID,
			Name:            p.Name,
			Color:           p.Color,
			IsReady:         p.IsReady,
			IsDonePlaying:   p.IsDonePlaying,
			HasLongestRoute: p.HasLongestRoute,
			Cars:            p.Cars,
			Points:          p.Points,
			NumTrainCards:   p.NumTrainCards(),
			ClaimedRoutes:   p.ClaimedRoutes,
			TurnActions:     p.History,
		}}
		if p.ID == viewerID {
			ps.Private = &PlayerPrivateState{
				TrainCards:               p.TrainCards(),
				PendingDestinationCards:  p.PendingDestinationCards(),
				SelectedDestinationCards: p.SelectedDestinationCards(),
			}
		}
		state.Players = append(state.Players, ps)
	}
	return state
}
