// Package manager implements the game phase machine: lobby membership,
// game start, per-turn action dispatch and turn advancement, and end-of-game
// scoring.
package manager

import (
	"errors"
	"fmt"
	"math/rand"

	"ticketroute/internal/cards"
	"ticketroute/internal/player"
	"ticketroute/internal/routemap"
)

var (
	// ErrWrongPhase indicates the operation is not legal in the current phase.
	ErrWrongPhase = errors.New("manager: operation not legal in the current phase")
	// ErrGameFull indicates the lobby already holds the maximum player count.
	ErrGameFull = errors.New("manager: game already has the maximum number of players")
	// ErrUnknownPlayer indicates the id does not name a player in this game.
	ErrUnknownPlayer = errors.New("manager: unknown player id")
	// ErrNameTaken indicates the requested name collides with another player.
	ErrNameTaken = errors.New("manager: name already in use")
	// ErrColorTaken indicates the requested color collides with another player.
	ErrColorTaken = errors.New("manager: color already in use")
	// ErrUnknownColor indicates the requested color is not one of the eight assignable colors.
	ErrUnknownColor = errors.New("manager: not a recognized player color")
	// ErrNoColorAvailable is the unreachable-invariant case: all eight colors are
	// in use while fewer than MaxPlayers players exist. It cannot happen because
	// MaxPlayers (5) is less than the number of colors (8).
	ErrNoColorAvailable = errors.New("manager: no player color available")
	// ErrNotYourTurn indicates the acting player is not at the current turn index.
	ErrNotYourTurn = errors.New("manager: it is not this player's turn")
)

// Manager owns the phase, turn counter, map, dealer, and ordered player list
// for a single game.
type Manager struct {
	phase Phase
	turn  *int // nil before Playing

	players   []*player.Player
	indexByID map[player.ID]int
	nextID    player.ID

	routeMap *routemap.Map
	dealer   *cards.Dealer
	pool     *routemap.WorkerPool
	rng      *rand.Rand

	numSelectedInitialDestinations int
	numPlayersDonePlaying           int
}

// New constructs a fresh lobby. pool is the process-wide worker pool shared
// by every game's longest-route search; rng seeds every shuffle this game
// performs (player order, train census, destination deck).
func New(pool *routemap.WorkerPool, rng *rand.Rand) *Manager {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Manager{
		phase:     PhaseInLobby,
		players:   nil,
		indexByID: make(map[player.ID]int),
		pool:      pool,
		rng:       rng,
	}
}

// Phase returns the current phase.
func (m *Manager) Phase() Phase { return m.phase }

// Turn returns the current turn counter, or nil before Playing starts.
func (m *Manager) Turn() *int { return m.turn }

func (m *Manager) findPlayer(id player.ID) (*player.Player, error) {
	idx, ok := m.indexByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	return m.players[idx], nil
}

func (m *Manager) nameTaken(name string) bool {
	for _, p := range m.players {
		if p.Name == name {
			return true
		}
	}
	return false
}

func (m *Manager) colorTaken(c player.Color) bool {
	for _, p := range m.players {
		if p.Color == c {
			return true
		}
	}
	return false
}

// nextDefaultName names the player about to be added "Player <id>", using
// m.nextID, and zero-pads the number one more digit at a time ("Player 03",
// "Player 003", ...) while the candidate collides with an existing name. At
// most MaxPlayers-1 existing players can conflict, so MaxPlayers candidates
// always include a free one.
func (m *Manager) nextDefaultName() (string, error) {
	digits := len(fmt.Sprint(m.nextID))
	for extra := 0; extra < MaxPlayers; extra++ {
		candidate := fmt.Sprintf("Player %0*d", digits+extra, m.nextID)
		if !m.nameTaken(candidate) {
			return candidate, nil
		}
	}
	return "", ErrNoColorAvailable
}

func (m *Manager) nextDefaultColor() (player.Color, error) {
	for _, c := range player.AllColors {
		if !m.colorTaken(c) {
			return c, nil
		}
	}
	return "", ErrNoColorAvailable
}

// AddPlayer adds a new lobby member with an auto-generated unique name and
// color. Legal only in InLobby and below MaxPlayers.
func (m *Manager) AddPlayer() (*player.Player, error) {
	if m.phase != PhaseInLobby {
		return nil, ErrWrongPhase
	}
	if len(m.players) >= MaxPlayers {
		return nil, ErrGameFull
	}

	name, err := m.nextDefaultName()
	if err != nil {
		return nil, err
	}
	color, err := m.nextDefaultColor()
	if err != nil {
		return nil, err
	}

	id := m.nextID
	m.nextID++
	p := player.New(id, name, color)
	m.indexByID[id] = len(m.players)
	m.players = append(m.players, p)
	return p, nil
}

// ChangeName renames a lobby player, InLobby only, enforcing uniqueness.
func (m *Manager) ChangeName(id player.ID, newName string) error {
	if m.phase != PhaseInLobby {
		return ErrWrongPhase
	}
	p, err := m.findPlayer(id)
	if err != nil {
		return err
	}
	if newName != p.Name && m.nameTaken(newName) {
		return fmt.Errorf("%w: %q", ErrNameTaken, newName)
	}
	p.Name = newName
	return nil
}

// ChangeColor recolors a lobby player, InLobby only, enforcing uniqueness.
func (m *Manager) ChangeColor(id player.ID, newColor player.Color) error {
	if m.phase != PhaseInLobby {
		return ErrWrongPhase
	}
	p, err := m.findPlayer(id)
	if err != nil {
		return err
	}
	valid := false
	for _, c := range player.AllColors {
		if c == newColor {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %q", ErrUnknownColor, newColor)
	}
	if newColor != p.Color && m.colorTaken(newColor) {
		return fmt.Errorf("%w: %q", ErrColorTaken, newColor)
	}
	p.Color = newColor
	return nil
}

// SetReady toggles a lobby player's ready flag. If this leaves at least
// MinPlayersToStart players all ready, the game starts immediately: the map
// and dealer are built, the player list is shuffled into turn order, and
// every player performs their initial draw.
func (m *Manager) SetReady(id player.ID, ready bool) error {
	if m.phase != PhaseInLobby {
		return ErrWrongPhase
	}
	p, err := m.findPlayer(id)
	if err != nil {
		return err
	}
	p.IsReady = ready

	if !ready || len(m.players) < MinPlayersToStart {
		return nil
	}
	for _, other := range m.players {
		if !other.IsReady {
			return nil
		}
	}
	return m.startGame()
}

func (m *Manager) startGame() error {
	routeMap, err := routemap.New(len(m.players), m.pool)
	if err != nil {
		return err
	}
	m.routeMap = routeMap
	m.dealer = cards.New(m.rng)

	m.rng.Shuffle(len(m.players), func(i, j int) {
		m.players[i], m.players[j] = m.players[j], m.players[i]
	})
	m.indexByID = make(map[player.ID]int, len(m.players))
	for i, p := range m.players {
		m.indexByID[p.ID] = i
	}

	for _, p := range m.players {
		trainCards, destinations, err := m.dealer.InitialDraw()
		if err != nil {
			return err
		}
		p.InitializeWhenGameStarts(trainCards, destinations)
	}

	m.phase = PhaseStarting
	return nil
}
