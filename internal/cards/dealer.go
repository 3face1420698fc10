// Package cards implements the train-card and destination-card dealer: the
// open/closed/discard train decks and the destination deque, including the
// wild-card face-up cap invariant and its cascading reshuffle.
package cards

import (
	"errors"
	"math/rand"

	cm "ticketroute/internal/citymap"
)

// OpenSlots is the fixed size of the face-up open deck.
const OpenSlots = 5

// ErrEmpty is returned by draw operations that find nothing left to draw.
var ErrEmpty = errors.New("cards: deck is empty")

// ErrSlotOutOfRange is returned when an open-deck slot index is invalid.
var ErrSlotOutOfRange = errors.New("cards: open slot index out of range")

// ErrSlotEmpty is returned when the chosen open-deck slot holds no card.
var ErrSlotEmpty = errors.New("cards: open slot is empty")

// ErrWildSecondDraw is returned when a wild is drawn from the open deck as a
// player's second draw of the turn.
var ErrWildSecondDraw = errors.New("cards: wild cards cannot be taken as a second draw")

// Dealer owns the train-card and destination-card decks for one game.
type Dealer struct {
	rng *rand.Rand

	open   [OpenSlots]*cm.TrainColor
	closed []cm.TrainColor // LIFO stack; top is the last element
	discard []cm.TrainColor

	destinations []cm.DestinationCard // deque; front = index 0, back = last index
}

// New builds a fresh Dealer: a shuffled 110-card train census (5 dealt face
// up, the rest closed) and a shuffled 30-card destination deque, with the
// wild-cap invariant already normalized.
func New(rng *rand.Rand) *Dealer {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	d := &Dealer{rng: rng}

	census := make([]cm.TrainColor, 0, cm.TotalTrainCards)
	for _, c := range cm.RealTrainColors {
		for i := 0; i < cm.CardsPerRealColor; i++ {
			census = append(census, c)
		}
	}
	for i := 0; i < cm.WildCardCount; i++ {
		census = append(census, cm.Wild)
	}
	d.rng.Shuffle(len(census), func(i, j int) { census[i], census[j] = census[j], census[i] })

	for i := 0; i < OpenSlots; i++ {
		c := census[i]
		d.open[i] = &c
	}
	d.closed = append(d.closed, census[OpenSlots:]...)

	d.destinations = cm.FixedDestinationCards()
	d.rng.Shuffle(len(d.destinations), func(i, j int) {
		d.destinations[i], d.destinations[j] = d.destinations[j], d.destinations[i]
	})

	d.normalizeWildCap()
	return d
}

// popClosed pops the top of the closed stack, reshuffling discard into it
// first if the closed stack is empty and discard is non-empty.
func (d *Dealer) popClosed() (cm.TrainColor, bool) {
	if len(d.closed) == 0 && len(d.discard) > 0 {
		d.reshuffleDiscardIntoClosed()
	}
	if len(d.closed) == 0 {
		return 0, false
	}
	n := len(d.closed)
	c := d.closed[n-1]
	d.closed = d.closed[:n-1]
	return c, true
}

func (d *Dealer) reshuffleDiscardIntoClosed() {
	d.closed = append(d.closed, d.discard...)
	d.discard = nil
	d.rng.Shuffle(len(d.closed), func(i, j int) { d.closed[i], d.closed[j] = d.closed[j], d.closed[i] })
}

// DrawFromClosed pops the top of the closed deck, pulling the discard pile
// back in (shuffled) first if needed.
func (d *Dealer) DrawFromClosed() (cm.TrainColor, error) {
	c, ok := d.popClosed()
	if !ok {
		return 0, ErrEmpty
	}
	return c, nil
}

// countWildsOpen reports how many open slots currently hold a wild card.
func (d *Dealer) countWildsOpen() int {
	n := 0
	for _, c := range d.open {
		if c != nil && *c == cm.Wild {
			n++
		}
	}
	return n
}

// countRealRemaining reports real-colored cards across open+closed+discard.
func (d *Dealer) countRealRemaining() int {
	n := 0
	for _, c := range d.open {
		if c != nil && c.IsReal() {
			n++
		}
	}
	for _, c := range d.closed {
		if c.IsReal() {
			n++
		}
	}
	for _, c := range d.discard {
		if c.IsReal() {
			n++
		}
	}
	return n
}

// normalizeWildCap restores invariant I1 (no 3+ wilds at rest in the open
// deck), unless reshuffling can no longer help, in which case it leaves the
// open deck as-is. The distilled rule recurses; this is the iterative
// formulation called for by the design notes, bounded by the feasibility
// guard re-checked on every pass.
func (d *Dealer) normalizeWildCap() (reshuffled bool) {
	for {
		if d.countWildsOpen() < 3 {
			return reshuffled
		}
		if d.countRealRemaining() < 3 {
			return reshuffled
		}

		for i := range d.open {
			if d.open[i] != nil {
				d.discard = append(d.discard, *d.open[i])
				d.open[i] = nil
			}
		}
		reshuffled = true

		for i := range d.open {
			if d.open[i] != nil {
				continue
			}
			if c, ok := d.popClosed(); ok {
				cc := c
				d.open[i] = &cc
			}
		}
	}
}

// DrawFromOpen extracts the card in the given open slot, refills it, runs
// wild-cap normalization, and reports whether normalization actually
// reshuffled. isSecondDraw rejects a wild as an illegal second-of-turn draw.
func (d *Dealer) DrawFromOpen(slot int, isSecondDraw bool) (cm.TrainColor, bool, error) {
	if slot < 0 || slot >= OpenSlots {
		return 0, false, ErrSlotOutOfRange
	}
	if d.open[slot] == nil {
		return 0, false, ErrSlotEmpty
	}
	drawn := *d.open[slot]
	if isSecondDraw && drawn == cm.Wild {
		return 0, false, ErrWildSecondDraw
	}

	d.open[slot] = nil
	if c, ok := d.popClosed(); ok {
		cc := c
		d.open[slot] = &cc
	}

	reshuffled := d.normalizeWildCap()
	return drawn, reshuffled, nil
}

// DrawDestinations pops up to 3 cards from the front of the destination
// deque. It returns an error only if the deque was already empty; otherwise
// it returns whatever remains (1, 2, or 3 cards).
func (d *Dealer) DrawDestinations() ([]cm.DestinationCard, error) {
	if len(d.destinations) == 0 {
		return nil, ErrEmpty
	}
	n := 3
	if len(d.destinations) < n {
		n = len(d.destinations)
	}
	drawn := append([]cm.DestinationCard{}, d.destinations[:n]...)
	d.destinations = d.destinations[n:]
	return drawn, nil
}

// DiscardTrainCards appends cards to discard, pulling it back into closed
// immediately if closed is currently empty.
func (d *Dealer) DiscardTrainCards(cards []cm.TrainColor) {
	d.discard = append(d.discard, cards...)
	if len(d.closed) == 0 && len(d.discard) > 0 {
		d.reshuffleDiscardIntoClosed()
	}
}

// DiscardDestinations pushes each card to the back of the deque (the
// opposite end from which DrawDestinations pops), so unreturned destinations
// are exhausted before any cycled-back discard is redrawn.
func (d *Dealer) DiscardDestinations(cards []cm.DestinationCard) {
	d.destinations = append(d.destinations, cards...)
}

// CanPlayerDrawAgainThisTurn reports whether a further train-card draw is
// currently possible: the closed deck is non-empty, or some open slot holds
// a non-wild card.
func (d *Dealer) CanPlayerDrawAgainThisTurn() bool {
	if len(d.closed) > 0 {
		return true
	}
	for _, c := range d.open {
		if c != nil && *c != cm.Wild {
			return true
		}
	}
	return false
}

// InitialDraw draws the 4 train cards and 3 destination cards dealt when a
// game starts. With the known census sizes this never fails for up to 5
// players.
func (d *Dealer) InitialDraw() ([]cm.TrainColor, []cm.DestinationCard, error) {
	trainCards := make([]cm.TrainColor, 0, 4)
	for i := 0; i < 4; i++ {
		c, err := d.DrawFromClosed()
		if err != nil {
			return nil, nil, err
		}
		trainCards = append(trainCards, c)
	}
	destinations, err := d.DrawDestinations()
	if err != nil {
		return nil, nil, err
	}
	return trainCards, destinations, nil
}

// OpenDeck returns a snapshot of the 5 open-deck slots (nil where empty).
func (d *Dealer) OpenDeck() [OpenSlots]*cm.TrainColor {
	return d.open
}

// ClosedCount returns the number of cards remaining in the closed deck.
func (d *Dealer) ClosedCount() int { return len(d.closed) }

// DiscardCount returns the number of cards in the discard pile.
func (d *Dealer) DiscardCount() int { return len(d.discard) }

// DestinationsRemaining returns the number of undrawn destination cards.
func (d *Dealer) DestinationsRemaining() int { return len(d.destinations) }

// Census returns the total count of every train card currently tracked by
// the dealer itself (open + closed + discard), keyed by color. It does not
// include cards held by players or spent on claimed routes; callers
// reconstruct full conservation (I2) by adding those in.
func (d *Dealer) Census() map[cm.TrainColor]int {
	counts := make(map[cm.TrainColor]int, cm.NumTrainColors)
	for _, c := range d.open {
		if c != nil {
			counts[*c]++
		}
	}
	for _, c := range d.closed {
		counts[c]++
	}
	for _, c := range d.discard {
		counts[c]++
	}
	return counts
}
