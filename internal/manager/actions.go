package manager

import (
	cm "ticketroute/internal/citymap"
	"ticketroute/internal/player"
	"ticketroute/internal/routemap"
)

// SelectInitialDestinations is the only legal action during Starting: each
// player independently selects at least 2 of their 3 dealt destinations.
// When the last player does so, the phase advances to Playing and the turn
// counter starts at 0.
func (m *Manager) SelectInitialDestinations(id player.ID, decisions []bool) error {
	if m.phase != PhaseStarting {
		return ErrWrongPhase
	}
	p, err := m.findPlayer(id)
	if err != nil {
		return err
	}
	if err := p.SelectDestinationCards(decisions, nil, m.dealer); err != nil {
		return err
	}

	m.numSelectedInitialDestinations++
	if m.numSelectedInitialDestinations == len(m.players) {
		m.phase = PhasePlaying
		turn := 0
		m.turn = &turn
	}
	return nil
}

// checkTurn verifies the game is in a turn-taking phase and that id owns the
// current turn.
func (m *Manager) checkTurn(id player.ID) (*player.Player, error) {
	if m.phase != PhasePlaying && m.phase != PhaseLastTurn {
		return nil, ErrWrongPhase
	}
	p, err := m.findPlayer(id)
	if err != nil {
		return nil, err
	}
	if m.indexByID[id] != *m.turn%len(m.players) {
		return nil, ErrNotYourTurn
	}
	return p, nil
}

// afterAction advances the turn counter and runs phase bookkeeping whenever
// the player's action just committed (ended) their turn.
func (m *Manager) afterAction(p *player.Player) {
	if len(p.CurrentTurnActions()) != 0 {
		return
	}

	*m.turn++

	switch m.phase {
	case PhasePlaying:
		if p.Cars < 3 {
			m.phase = PhaseLastTurn
			m.numPlayersDonePlaying = 0
		}
	case PhaseLastTurn:
		if !p.IsDonePlaying {
			p.IsDonePlaying = true
			m.numPlayersDonePlaying++
		}
		if m.numPlayersDonePlaying == len(m.players) {
			m.finishGame()
		}
	}
}

func (m *Manager) finishGame() {
	m.phase = PhaseDone

	longest := make(map[player.ID]uint16, len(m.players))
	var max uint16
	for _, p := range m.players {
		lr := p.Finalize(m.routeMap)
		longest[p.ID] = lr
		if lr > max {
			max = lr
		}
	}
	for _, p := range m.players {
		p.HasLongestRoute = longest[p.ID] == max
	}
}

// ClaimRoute dispatches a route claim to the acting player.
func (m *Manager) ClaimRoute(id player.ID, pair cm.Pair, parallelIndex int, hand []cm.TrainColor) (routemap.ClaimedRoute, error) {
	p, err := m.checkTurn(id)
	if err != nil {
		return routemap.ClaimedRoute{}, err
	}
	claimed, err := p.ClaimRoute(pair, parallelIndex, hand, *m.turn, m.routeMap, m.dealer)
	if err != nil {
		return routemap.ClaimedRoute{}, err
	}
	m.afterAction(p)
	return claimed, nil
}

// DrawOpenTrainCard dispatches a face-up train-card draw to the acting player.
func (m *Manager) DrawOpenTrainCard(id player.ID, slot int) (cm.TrainColor, error) {
	p, err := m.checkTurn(id)
	if err != nil {
		return 0, err
	}
	drawn, err := p.DrawOpenTrainCard(slot, *m.turn, m.dealer)
	if err != nil {
		return 0, err
	}
	m.afterAction(p)
	return drawn, nil
}

// DrawCloseTrainCard dispatches a blind train-card draw to the acting player.
func (m *Manager) DrawCloseTrainCard(id player.ID) (cm.TrainColor, error) {
	p, err := m.checkTurn(id)
	if err != nil {
		return 0, err
	}
	drawn, err := p.DrawCloseTrainCard(*m.turn, m.dealer)
	if err != nil {
		return 0, err
	}
	m.afterAction(p)
	return drawn, nil
}

// DrawDestinationCards dispatches a destination-card draw to the acting player.
func (m *Manager) DrawDestinationCards(id player.ID) ([]cm.DestinationCard, error) {
	p, err := m.checkTurn(id)
	if err != nil {
		return nil, err
	}
	drawn, err := p.DrawDestinationCards(*m.turn, m.dealer)
	if err != nil {
		return nil, err
	}
	m.afterAction(p)
	return drawn, nil
}

// SelectDestinationCards dispatches a destination-card selection to the
// acting player during Playing or LastTurn (as opposed to the Starting-phase
// SelectInitialDestinations).
func (m *Manager) SelectDestinationCards(id player.ID, decisions []bool) error {
	p, err := m.checkTurn(id)
	if err != nil {
		return err
	}
	turn := *m.turn
	if err := p.SelectDestinationCards(decisions, &turn, m.dealer); err != nil {
		return err
	}
	m.afterAction(p)
	return nil
}
