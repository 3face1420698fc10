// Package routemap implements the fixed 78-pair route graph: claim
// validation, per-player connectivity queries, and the longest-continuous-
// trail computation used for end-of-game scoring.
package routemap

import (
	"errors"
	"fmt"

	cm "ticketroute/internal/citymap"
)

// PlayerID identifies a player within one game.
type PlayerID int

// Segment is one claimable edge between two adjacent cities.
type Segment struct {
	Pair          cm.Pair
	ParallelIndex int
	Color         cm.TrainColor
	Length        uint8
	Claimer       *PlayerID
}

// ClaimedRoute is the receipt returned by a successful claim.
type ClaimedRoute struct {
	Pair          cm.Pair `json:"pair"`
	ParallelIndex int     `json:"parallel_route_index"`
	Length        uint8   `json:"length"`
}

var (
	// ErrUnknownPair indicates the city pair is not in the catalog.
	ErrUnknownPair = errors.New("routemap: unknown city pair")
	// ErrUnknownParallel indicates the parallel index is out of range for the pair.
	ErrUnknownParallel = errors.New("routemap: unknown parallel index")
	// ErrWrongHandSize indicates the hand does not match the segment length.
	ErrWrongHandSize = errors.New("routemap: hand size does not match route length")
	// ErrAlreadyClaimed indicates the segment has already been claimed.
	ErrAlreadyClaimed = errors.New("routemap: route already claimed")
	// ErrBothParallelsSamePlayer indicates the same player tried to claim both parallels.
	ErrBothParallelsSamePlayer = errors.New("routemap: cannot claim more than one parallel route between the same two cities")
	// ErrParallelNotAllowed indicates a second claimant on a parallel pair with <4 players.
	ErrParallelNotAllowed = errors.New("routemap: parallel routes are not allowed with fewer than 4 players")
	// ErrMixedColors indicates the hand contains more than one non-wild color.
	ErrMixedColors = errors.New("routemap: hand contains mixed colors")
	// ErrColorMismatch indicates the hand's color does not match the segment's color.
	ErrColorMismatch = errors.New("routemap: hand color does not match route color")
	// ErrInvalidPlayerCount indicates the map was constructed with an out-of-range player count.
	ErrInvalidPlayerCount = errors.New("routemap: player count must be between 2 and 5")
)

// edgeKey is the directed lookup key into Map.edges.
type edgeKey = cm.Pair

// Map owns the fixed route catalog for one game instance.
type Map struct {
	parallelRoutesAllowed bool
	// edges maps both (a,b) and (b,a) to the same underlying segment slice,
	// so a mutation made through one direction is visible through the other.
	edges map[edgeKey][]*Segment
	pool  *WorkerPool
}

// New constructs a fresh Map for a game with n players (2..5). The shared
// worker pool used by LongestRoute is supplied by the caller so it can be
// reused process-wide across games, per the concurrency model.
func New(n int, pool *WorkerPool) (*Map, error) {
	if n < 2 || n > 5 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, n)
	}
	m := &Map{
		parallelRoutesAllowed: n > 3,
		edges:                 make(map[edgeKey][]*Segment, len(catalog)*2),
		pool:                  pool,
	}
	for _, entry := range catalog {
		segs := make([]*Segment, len(entry.segments))
		for i, s := range entry.segments {
			segs[i] = &Segment{
				Pair:          entry.pair,
				ParallelIndex: i,
				Color:         s.color,
				Length:        s.length,
			}
		}
		m.edges[entry.pair] = segs
		m.edges[entry.pair.Reversed()] = segs
	}
	return m, nil
}

// ParallelRoutesAllowed reports whether a pair's two parallel segments may be
// claimed by two different players (true iff the game has more than 3 players).
func (m *Map) ParallelRoutesAllowed() bool {
	return m.parallelRoutesAllowed
}

// Segments returns the parallel-route segments for a pair in either
// direction, or nil if the pair is not adjacent.
func (m *Map) Segments(pair cm.Pair) []*Segment {
	return m.edges[pair]
}

// handCounts tallies the colors present in hand.
func handCounts(hand []cm.TrainColor) map[cm.TrainColor]int {
	counts := make(map[cm.TrainColor]int, len(hand))
	for _, c := range hand {
		counts[c]++
	}
	return counts
}

// commonColor determines the single real color shared by a hand, ignoring
// wilds. If every card is wild, the common color is Wild itself.
func commonColor(hand []cm.TrainColor) (cm.TrainColor, error) {
	found := cm.TrainColor(-1)
	for _, c := range hand {
		if c == cm.Wild {
			continue
		}
		if found == cm.TrainColor(-1) {
			found = c
			continue
		}
		if found != c {
			return 0, ErrMixedColors
		}
	}
	if found == cm.TrainColor(-1) {
		return cm.Wild, nil
	}
	return found, nil
}

// Claim validates and records a route claim. Checks run in this order: the
// pair exists, the parallel index is in range, the hand size equals the
// segment length, the segment is unclaimed, the parallel-route rules hold,
// the hand has one common real color (or is all wild), and that color
// matches a real-colored segment.
func (m *Map) Claim(pair cm.Pair, parallelIndex int, hand []cm.TrainColor, player PlayerID) (ClaimedRoute, error) {
	segs, ok := m.edges[pair]
	if !ok {
		return ClaimedRoute{}, fmt.Errorf("%w: %v-%v", ErrUnknownPair, pair.A, pair.B)
	}
	if parallelIndex < 0 || parallelIndex >= len(segs) {
		return ClaimedRoute{}, fmt.Errorf("%w: %d", ErrUnknownParallel, parallelIndex)
	}
	seg := segs[parallelIndex]

	if len(hand) != int(seg.Length) {
		return ClaimedRoute{}, fmt.Errorf("%w: need %d, got %d", ErrWrongHandSize, seg.Length, len(hand))
	}
	if seg.Claimer != nil {
		return ClaimedRoute{}, ErrAlreadyClaimed
	}

	if len(segs) > 1 {
		other := segs[1-parallelIndex]
		if other.Claimer != nil {
			if *other.Claimer == player {
				return ClaimedRoute{}, ErrBothParallelsSamePlayer
			}
			if !m.parallelRoutesAllowed {
				return ClaimedRoute{}, ErrParallelNotAllowed
			}
		}
	}

	common, err := commonColor(hand)
	if err != nil {
		return ClaimedRoute{}, err
	}
	if common != cm.Wild && seg.Color != cm.Wild && common != seg.Color {
		return ClaimedRoute{}, fmt.Errorf("%w: route is %v, hand is %v", ErrColorMismatch, seg.Color, common)
	}

	p := player
	seg.Claimer = &p

	return ClaimedRoute{Pair: pair, ParallelIndex: parallelIndex, Length: seg.Length}, nil
}

// IsFulfilled reports whether player's claimed segments connect start to end
// (inclusive of the degenerate case start == end, which is true iff any
// route adjacent to start is claimed by player).
func (m *Map) IsFulfilled(start, end cm.City, player PlayerID) bool {
	if start == end {
		for pair, segs := range m.edges {
			if pair.A != start {
				continue
			}
			for _, seg := range segs {
				if seg.Claimer != nil && *seg.Claimer == player {
					return true
				}
			}
		}
		return false
	}

	visited := make([]bool, cm.NumCities)
	queue := []cm.City{start}
	visited[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == end {
			return true
		}
		for pair, segs := range m.edges {
			if pair.A != cur {
				continue
			}
			claimedByPlayer := false
			for _, seg := range segs {
				if seg.Claimer != nil && *seg.Claimer == player {
					claimedByPlayer = true
					break
				}
			}
			if claimedByPlayer && !visited[pair.B] {
				visited[pair.B] = true
				queue = append(queue, pair.B)
			}
		}
	}
	return false
}

var lengthPoints = map[uint8]uint8{1: 1, 2: 2, 3: 4, 4: 7, 5: 10, 6: 15}

// PointsForLength returns the immediate points earned for claiming a route of
// the given length. Calling it with a length outside [1,6] is a programmer
// error: every catalog segment is built with a length in that range.
func PointsForLength(length uint8) uint8 {
	p, ok := lengthPoints[length]
	if !ok {
		panic(fmt.Sprintf("routemap: points_for_length called with out-of-range length %d", length))
	}
	return p
}
