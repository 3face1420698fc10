package player

import (
	"fmt"

	"ticketroute/internal/cards"
	cm "ticketroute/internal/citymap"
	"ticketroute/internal/routemap"
)

// describeTrainDraw renders the human-readable sentence for a train-card draw.
func describeTrainDraw(name string, c cm.TrainColor, source string) string {
	return fmt.Sprintf("%s drew a %v train card from the %s deck", name, c, source)
}

// ClaimRoute validates and executes a route claim, delegating to m for the
// graph-level rules and to dealer to receive the spent cards.
func (p *Player) ClaimRoute(pair cm.Pair, parallelIndex int, hand []cm.TrainColor, turn int, m *routemap.Map, dealer *cards.Dealer) (routemap.ClaimedRoute, error) {
	if len(p.current) != 0 {
		return routemap.ClaimedRoute{}, ErrTooManyActionsThisTurn
	}
	if len(hand) > p.Cars {
		return routemap.ClaimedRoute{}, ErrNotEnoughCars
	}
	need := make(map[cm.TrainColor]int, len(hand))
	for _, c := range hand {
		need[c]++
	}
	for c, n := range need {
		if p.trainCards[c] < n {
			return routemap.ClaimedRoute{}, fmt.Errorf("%w: need %d %v, have %d", ErrInsufficientCards, n, c, p.trainCards[c])
		}
	}

	claimed, err := m.Claim(pair, parallelIndex, hand, p.ID)
	if err != nil {
		return routemap.ClaimedRoute{}, err
	}

	for c, n := range need {
		p.trainCards[c] -= n
	}
	dealer.DiscardTrainCards(hand)
	p.Points += int(routemap.PointsForLength(claimed.Length))
	p.Cars -= int(claimed.Length)
	p.ClaimedRoutes = append(p.ClaimedRoutes, claimed)

	desc := fmt.Sprintf("%s claimed %v-%v (parallel %d)", p.Name, pair.A, pair.B, parallelIndex)
	p.current = append(p.current, ActionEntry{Action: ActionClaimedRoute, Description: desc})
	p.commitTurn(&turn)
	return claimed, nil
}

// isSecondTrainDraw reports whether the in-progress turn's sole logged action
// is a non-wild open draw or a closed draw, the only two actions that may be
// followed by a second train-card draw.
func (p *Player) isSecondTrainDraw() (bool, error) {
	action, ok := lastLoggedAction(p.current)
	if !ok {
		return false, nil
	}
	if len(p.current) > 1 {
		return false, ErrTooManyActionsThisTurn
	}
	switch action {
	case ActionDrewOpenNonWildTrainCard, ActionDrewCloseTrainCard:
		return true, nil
	case ActionDrewDestinationCards:
		return false, ErrMustFollowDestinationDraw
	default:
		return false, ErrTooManyActionsThisTurn
	}
}

// DrawOpenTrainCard draws the face-up card at slot, refills it, and records
// whether the turn ends: a wild always ends the turn immediately; otherwise
// the turn ends if this was the second draw, or if no further draw remains.
func (p *Player) DrawOpenTrainCard(slot int, turn int, dealer *cards.Dealer) (cm.TrainColor, error) {
	isSecond, err := p.isSecondTrainDraw()
	if err != nil {
		return 0, err
	}

	drawn, _, err := dealer.DrawFromOpen(slot, isSecond)
	if err != nil {
		return 0, err
	}
	p.trainCards[drawn]++

	action := ActionDrewOpenNonWildTrainCard
	if drawn == cm.Wild {
		action = ActionDrewOpenWildTrainCard
	}
	p.current = append(p.current, ActionEntry{
		Action:      action,
		Description: describeTrainDraw(p.Name, drawn, "open"),
	})

	endsTurn := drawn == cm.Wild || isSecond || !dealer.CanPlayerDrawAgainThisTurn()
	if endsTurn {
		p.commitTurn(&turn)
	}
	return drawn, nil
}

// DrawCloseTrainCard draws blind from the closed deck. Unlike open draws,
// closed draws are never wild-restricted as a second draw.
func (p *Player) DrawCloseTrainCard(turn int, dealer *cards.Dealer) (cm.TrainColor, error) {
	isSecond, err := p.isSecondTrainDraw()
	if err != nil {
		return 0, err
	}

	drawn, err := dealer.DrawFromClosed()
	if err != nil {
		return 0, err
	}
	p.trainCards[drawn]++

	p.current = append(p.current, ActionEntry{
		Action:      ActionDrewCloseTrainCard,
		Description: describeTrainDraw(p.Name, drawn, "closed"),
	})

	endsTurn := isSecond || !dealer.CanPlayerDrawAgainThisTurn()
	if endsTurn {
		p.commitTurn(&turn)
	}
	return drawn, nil
}

// DrawDestinationCards draws up to 3 destination cards into the pending list.
// It does not end the turn; a matching SelectDestinationCards call must
// follow before any other action.
func (p *Player) DrawDestinationCards(turn int, dealer *cards.Dealer) ([]cm.DestinationCard, error) {
	if len(p.current) != 0 {
		return nil, ErrTooManyActionsThisTurn
	}

	drawn, err := dealer.DrawDestinations()
	if err != nil {
		return nil, err
	}
	p.pendingDestinations = drawn

	p.current = append(p.current, ActionEntry{
		Action:      ActionDrewDestinationCards,
		Description: fmt.Sprintf("%s drew %d destination cards", p.Name, len(drawn)),
	})
	return append([]cm.DestinationCard(nil), drawn...), nil
}

// SelectDestinationCards keeps each pending destination for which decisions
// is true, discarding the rest, and always ends the turn. turn is nil only
// during the Starting phase, where the minimum kept is 2 instead of 1 and no
// same-turn draw_destination_cards precondition is enforced.
func (p *Player) SelectDestinationCards(decisions []bool, turn *int, dealer *cards.Dealer) error {
	if len(p.pendingDestinations) == 0 {
		return ErrNoPendingDestinations
	}
	if len(decisions) != len(p.pendingDestinations) {
		return ErrWrongDecisionCount
	}

	minSelected := 1
	if turn == nil {
		minSelected = 2
	} else {
		action, ok := lastLoggedAction(p.current)
		if !ok || action != ActionDrewDestinationCards || len(p.current) != 1 {
			return ErrMustFollowDestinationDraw
		}
	}

	var kept, discarded []cm.DestinationCard
	for i, keep := range decisions {
		if keep {
			kept = append(kept, p.pendingDestinations[i])
		} else {
			discarded = append(discarded, p.pendingDestinations[i])
		}
	}
	if len(kept) < minSelected {
		return fmt.Errorf("%w: need at least %d, got %d", ErrNotEnoughSelected, minSelected, len(kept))
	}

	p.selectedDestinations = append(p.selectedDestinations, kept...)
	p.pendingDestinations = nil
	dealer.DiscardDestinations(discarded)

	p.current = append(p.current, ActionEntry{
		Action:      ActionSelectedDestinationCards,
		Description: fmt.Sprintf("%s selected %d of %d destination cards", p.Name, len(kept), len(kept)+len(discarded)),
	})
	p.commitTurn(turn)
	return nil
}

// Finalize runs end-of-game scoring: each selected destination adds its
// points if fulfilled, subtracts them otherwise. It returns the player's
// longest continuous trail for longest-route bonus adjudication by the
// manager.
func (p *Player) Finalize(m *routemap.Map) uint16 {
	for _, d := range p.selectedDestinations {
		if m.IsFulfilled(d.Endpoints.A, d.Endpoints.B, p.ID) {
			p.Points += int(d.Points)
		} else {
			p.Points -= int(d.Points)
		}
	}
	return m.LongestRoute(p.ClaimedRoutes)
}
