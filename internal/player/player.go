// Package player implements per-player state and the action primitives that
// delegate into the card dealer and the route graph.
package player

import (
	"errors"

	cm "ticketroute/internal/citymap"
	"ticketroute/internal/routemap"
)

// ID identifies a player within one game.
type ID = routemap.PlayerID

// StartingCars is the number of train cars every player begins with.
const StartingCars = 45

// Action tags the kind of a logged turn action.
type Action string

const (
	ActionClaimedRoute             Action = "claimed_route"
	ActionDrewOpenWildTrainCard    Action = "drew_open_wild_train_card"
	ActionDrewOpenNonWildTrainCard Action = "drew_open_non_wild_train_card"
	ActionDrewCloseTrainCard       Action = "drew_close_train_card"
	ActionDrewDestinationCards     Action = "drew_destination_cards"
	ActionSelectedDestinationCards Action = "selected_destination_cards"
)

// ActionEntry is one logged action: its tag plus a human-readable sentence
// generated at mutation time, since it may describe facts (e.g. which face-up
// card was drawn) that the viewer loses visibility of once the slot refills.
type ActionEntry struct {
	Action      Action `json:"action"`
	Description string `json:"description"`
}

// TurnLog is the committed action log for one completed turn. Turn is nil for
// the destination selections made during the Starting phase, which precede
// any turn counter.
type TurnLog struct {
	Turn    *int          `json:"turn"`
	Actions []ActionEntry `json:"actions"`
}

var (
	// ErrTooManyActionsThisTurn indicates the current turn already has its
	// full complement of logged actions.
	ErrTooManyActionsThisTurn = errors.New("player: this turn already has an action logged")
	// ErrMustFollowDestinationDraw indicates select_destination_cards was
	// called without a matching draw_destination_cards earlier in the turn.
	ErrMustFollowDestinationDraw = errors.New("player: selecting destinations must follow drawing them in the same turn")
	// ErrNoPendingDestinations indicates there is nothing to select from.
	ErrNoPendingDestinations = errors.New("player: no pending destination cards to select from")
	// ErrWrongDecisionCount indicates the decisions slice does not match pending.
	ErrWrongDecisionCount = errors.New("player: decisions length does not match pending destinations")
	// ErrNotEnoughSelected indicates fewer than the minimum destinations were kept.
	ErrNotEnoughSelected = errors.New("player: too few destination cards selected")
	// ErrNotEnoughCars indicates the player does not have enough cars for the claim.
	ErrNotEnoughCars = errors.New("player: not enough cars remaining")
	// ErrInsufficientCards indicates the player's hand lacks the cards being spent.
	ErrInsufficientCards = errors.New("player: insufficient train cards of the required color")
)

// Player holds one participant's public and private state.
type Player struct {
	ID      ID
	Name    string
	Color   Color
	IsReady bool

	IsDonePlaying   bool
	HasLongestRoute bool

	Cars          int
	Points        int
	ClaimedRoutes []routemap.ClaimedRoute
	History       []TurnLog

	// trainCards maps every one of the 9 TrainColor values to a
	// non-negative count; all keys are always present.
	trainCards map[cm.TrainColor]int

	pendingDestinations  []cm.DestinationCard
	selectedDestinations []cm.DestinationCard

	// current holds the not-yet-committed actions of the in-progress turn.
	current []ActionEntry
}

// New constructs a fresh lobby player with an empty hand and full cars.
func New(id ID, name string, color Color) *Player {
	p := &Player{
		ID:         id,
		Name:       name,
		Color:      color,
		Cars:       StartingCars,
		trainCards: make(map[cm.TrainColor]int, cm.NumTrainColors),
	}
	for _, c := range cm.AllTrainColors {
		p.trainCards[c] = 0
	}
	return p
}

// NumTrainCards returns the total number of train cards held, derived from
// the private per-color counts.
func (p *Player) NumTrainCards() int {
	n := 0
	for _, c := range p.trainCards {
		n += c
	}
	return n
}

// TrainCards returns a copy of the private per-color hand counts.
func (p *Player) TrainCards() map[cm.TrainColor]int {
	out := make(map[cm.TrainColor]int, len(p.trainCards))
	for k, v := range p.trainCards {
		out[k] = v
	}
	return out
}

// PendingDestinationCards returns the destinations awaiting selection.
func (p *Player) PendingDestinationCards() []cm.DestinationCard {
	return append([]cm.DestinationCard(nil), p.pendingDestinations...)
}

// SelectedDestinationCards returns the destinations the player has kept.
func (p *Player) SelectedDestinationCards() []cm.DestinationCard {
	return append([]cm.DestinationCard(nil), p.selectedDestinations...)
}

// CurrentTurnActions returns the actions logged so far in the in-progress
// turn (not yet committed to History).
func (p *Player) CurrentTurnActions() []ActionEntry {
	return append([]ActionEntry(nil), p.current...)
}

// InitializeWhenGameStarts performs the Starting-phase initial draw: 4 train
// cards and 3 pending destinations. Construction-time dealing is not itself a
// logged turn action.
func (p *Player) InitializeWhenGameStarts(trainCards []cm.TrainColor, destinations []cm.DestinationCard) {
	for _, c := range trainCards {
		p.trainCards[c]++
	}
	p.pendingDestinations = append([]cm.DestinationCard(nil), destinations...)
}

// commitTurn appends the pending actions as one TurnLog entry and clears them.
func (p *Player) commitTurn(turn *int) {
	p.History = append(p.History, TurnLog{Turn: turn, Actions: p.current})
	p.current = nil
}

func lastLoggedAction(entries []ActionEntry) (Action, bool) {
	if len(entries) == 0 {
		return "", false
	}
	return entries[0].Action, true
}
