package player

import (
	"errors"
	"math/rand"
	"testing"

	"ticketroute/internal/cards"
	cm "ticketroute/internal/citymap"
	"ticketroute/internal/routemap"
)

func mustMap(t *testing.T, n int) *routemap.Map {
	t.Helper()
	m, err := routemap.New(n, routemap.NewWorkerPool(2))
	if err != nil {
		t.Fatalf("routemap.New(%d) failed: %v", n, err)
	}
	return m
}

func TestInitializeWhenGameStartsPopulatesHandAndPending(t *testing.T) {
	p := New(0, "Alice", ColorRed)
	p.InitializeWhenGameStarts([]cm.TrainColor{cm.Black, cm.Black, cm.Wild, cm.Red}, []cm.DestinationCard{
		{Endpoints: cm.Pair{A: cm.Boston, B: cm.Miami}, Points: 12},
		{Endpoints: cm.Pair{A: cm.Chicago, B: cm.SantaFe}, Points: 9},
		{Endpoints: cm.Pair{A: cm.Denver, B: cm.ElPaso}, Points: 4},
	})

	if got := p.NumTrainCards(); got != 4 {
		t.Errorf("NumTrainCards() = %d, want 4", got)
	}
	if got := len(p.PendingDestinationCards()); got != 3 {
		t.Errorf("len(pending) = %d, want 3", got)
	}
}

func TestClaimRouteDeductsCarsAndCards(t *testing.T) {
	m := mustMap(t, 2)
	p := New(1, "Alice", ColorRed)
	p.trainCards[cm.White] = 2

	claimed, err := p.ClaimRoute(cm.Pair{A: cm.Washington, B: cm.Raleigh}, 0, []cm.TrainColor{cm.White, cm.White}, 0, m, cards.New(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("ClaimRoute failed: %v", err)
	}
	if claimed.Length != 2 {
		t.Fatalf("claimed length = %d, want 2", claimed.Length)
	}
	if p.Cars != StartingCars-2 {
		t.Errorf("Cars = %d, want %d", p.Cars, StartingCars-2)
	}
	if p.Points != 2 {
		t.Errorf("Points = %d, want 2", p.Points)
	}
	if p.trainCards[cm.White] != 0 {
		t.Errorf("trainCards[White] = %d, want 0", p.trainCards[cm.White])
	}
	if len(p.ClaimedRoutes) != 1 {
		t.Fatalf("len(ClaimedRoutes) = %d, want 1", len(p.ClaimedRoutes))
	}
	if len(p.History) != 1 || p.History[0].Actions[0].Action != ActionClaimedRoute {
		t.Errorf("History not committed correctly: %+v", p.History)
	}
}

func TestClaimRouteRejectsInsufficientCards(t *testing.T) {
	m := mustMap(t, 2)
	p := New(1, "Alice", ColorRed)
	p.trainCards[cm.White] = 1

	if _, err := p.ClaimRoute(cm.Pair{A: cm.Washington, B: cm.Raleigh}, 0, []cm.TrainColor{cm.White, cm.White}, 0, m, cards.New(rand.New(rand.NewSource(1)))); !errors.Is(err, ErrInsufficientCards) {
		t.Fatalf("err = %v, want ErrInsufficientCards", err)
	}
}

func TestClaimRouteRejectsWhenActionAlreadyLoggedThisTurn(t *testing.T) {
	m := mustMap(t, 2)
	p := New(1, "Alice", ColorRed)
	p.current = []ActionEntry{{Action: ActionDrewDestinationCards}}

	if _, err := p.ClaimRoute(cm.Pair{A: cm.Washington, B: cm.Raleigh}, 0, nil, 0, m, cards.New(rand.New(rand.NewSource(1)))); !errors.Is(err, ErrTooManyActionsThisTurn) {
		t.Fatalf("err = %v, want ErrTooManyActionsThisTurn", err)
	}
}

func TestDrawOpenWildAlwaysEndsTurn(t *testing.T) {
	d := cards.New(rand.New(rand.NewSource(1)))
	p := New(1, "Alice", ColorRed)

	var wildSlot = -1
	open := d.OpenDeck()
	for i, c := range open {
		if c != nil && *c == cm.Wild {
			wildSlot = i
			break
		}
	}
	if wildSlot == -1 {
		t.Skip("no wild in open deck for this seed")
	}

	if _, err := p.DrawOpenTrainCard(wildSlot, 0, d); err != nil {
		t.Fatalf("DrawOpenTrainCard failed: %v", err)
	}
	if len(p.current) != 0 {
		t.Fatal("expected turn to end (committed) after drawing an open wild")
	}
	if len(p.History) != 1 || p.History[0].Actions[0].Action != ActionDrewOpenWildTrainCard {
		t.Fatalf("History = %+v, want one DrewOpenWildTrainCard entry", p.History)
	}
}

func TestDrawOpenNonWildThenCloseEndsTurnOnSecondDraw(t *testing.T) {
	d := cards.New(rand.New(rand.NewSource(2)))
	p := New(1, "Alice", ColorRed)

	var nonWildSlot = -1
	open := d.OpenDeck()
	for i, c := range open {
		if c != nil && *c != cm.Wild {
			nonWildSlot = i
			break
		}
	}
	if nonWildSlot == -1 {
		t.Skip("no non-wild in open deck for this seed")
	}

	if _, err := p.DrawOpenTrainCard(nonWildSlot, 0, d); err != nil {
		t.Fatalf("first draw failed: %v", err)
	}
	if len(p.current) != 1 {
		t.Fatalf("expected turn still open after first non-wild draw, current=%+v", p.current)
	}

	if _, err := p.DrawCloseTrainCard(0, d); err != nil {
		t.Fatalf("second draw failed: %v", err)
	}
	if len(p.current) != 0 {
		t.Fatal("expected turn to end after the second draw")
	}
	if len(p.History) != 1 || len(p.History[0].Actions) != 2 {
		t.Fatalf("History = %+v, want one entry with 2 actions", p.History)
	}
}

func TestDrawOpenWildAsSecondDrawRejected(t *testing.T) {
	d := cards.New(rand.New(rand.NewSource(2)))
	p := New(1, "Alice", ColorRed)

	var nonWildSlot, wildSlot = -1, -1
	open := d.OpenDeck()
	for i, c := range open {
		if c == nil {
			continue
		}
		if *c == cm.Wild {
			wildSlot = i
		} else {
			nonWildSlot = i
		}
	}
	if nonWildSlot == -1 || wildSlot == -1 {
		t.Skip("need both a wild and non-wild slot for this seed")
	}

	if _, err := p.DrawOpenTrainCard(nonWildSlot, 0, d); err != nil {
		t.Fatalf("first draw failed: %v", err)
	}
	if _, err := p.DrawOpenTrainCard(wildSlot, 0, d); !errors.Is(err, cards.ErrWildSecondDraw) {
		t.Fatalf("err = %v, want ErrWildSecondDraw", err)
	}
}

func TestDrawDestinationCardsDoesNotEndTurn(t *testing.T) {
	d := cards.New(rand.New(rand.NewSource(1)))
	p := New(1, "Alice", ColorRed)

	drawn, err := p.DrawDestinationCards(0, d)
	if err != nil {
		t.Fatalf("DrawDestinationCards failed: %v", err)
	}
	if len(drawn) == 0 {
		t.Fatal("expected at least one destination card")
	}
	if len(p.current) != 1 || p.current[0].Action != ActionDrewDestinationCards {
		t.Fatalf("current = %+v, want one DrewDestinationCards entry", p.current)
	}
	if len(p.History) != 0 {
		t.Fatal("draw_destination_cards must not end the turn")
	}
}

func TestSelectDestinationCardsDuringStartingRequiresTwo(t *testing.T) {
	d := cards.New(rand.New(rand.NewSource(1)))
	p := New(1, "Alice", ColorRed)
	destinations, err := d.DrawDestinations()
	if err != nil {
		t.Fatalf("DrawDestinations failed: %v", err)
	}
	p.InitializeWhenGameStarts(nil, destinations)
	if len(p.pendingDestinations) != 3 {
		t.Fatalf("test fixture needs 3 pending destinations, got %d", len(p.pendingDestinations))
	}

	if err := p.SelectDestinationCards([]bool{true, false, false}, nil, d); !errors.Is(err, ErrNotEnoughSelected) {
		t.Fatalf("err = %v, want ErrNotEnoughSelected", err)
	}
	if err := p.SelectDestinationCards([]bool{true, true, false}, nil, d); err != nil {
		t.Fatalf("SelectDestinationCards failed: %v", err)
	}
	if got := len(p.SelectedDestinationCards()); got != 2 {
		t.Errorf("len(selected) = %d, want 2", got)
	}
	if got := d.DestinationsRemaining(); got != 28 {
		t.Errorf("destinations remaining after 1 discarded = %d, want 28", got)
	}
}

func TestSelectDestinationCardsDuringPlayRequiresPriorDraw(t *testing.T) {
	d := cards.New(rand.New(rand.NewSource(1)))
	p := New(1, "Alice", ColorRed)
	p.pendingDestinations = []cm.DestinationCard{
		{Endpoints: cm.Pair{A: cm.Boston, B: cm.Miami}, Points: 12},
	}
	turn := 3

	if err := p.SelectDestinationCards([]bool{true}, &turn, d); !errors.Is(err, ErrMustFollowDestinationDraw) {
		t.Fatalf("err = %v, want ErrMustFollowDestinationDraw", err)
	}

	p.current = []ActionEntry{{Action: ActionDrewDestinationCards}}
	if err := p.SelectDestinationCards([]bool{true}, &turn, d); err != nil {
		t.Fatalf("SelectDestinationCards failed: %v", err)
	}
	if len(p.current) != 0 {
		t.Fatal("select_destination_cards must end the turn")
	}
	if len(p.History) != 1 || p.History[0].Turn == nil || *p.History[0].Turn != 3 {
		t.Fatalf("History = %+v, want one entry for turn 3", p.History)
	}
}

func TestFinalizeScoresFulfilledAndUnfulfilledDestinations(t *testing.T) {
	m := mustMap(t, 2)
	p := New(1, "Alice", ColorRed)
	p.trainCards[cm.White] = 2

	if _, err := p.ClaimRoute(cm.Pair{A: cm.Washington, B: cm.Raleigh}, 0, []cm.TrainColor{cm.White, cm.White}, 0, m, cards.New(rand.New(rand.NewSource(1)))); err != nil {
		t.Fatalf("ClaimRoute failed: %v", err)
	}
	p.selectedDestinations = []cm.DestinationCard{
		{Endpoints: cm.Pair{A: cm.Washington, B: cm.Raleigh}, Points: 5},
		{Endpoints: cm.Pair{A: cm.Seattle, B: cm.Miami}, Points: 20},
	}
	pointsBefore := p.Points

	longest := p.Finalize(m)
	if longest != 2 {
		t.Errorf("Finalize longest route = %d, want 2", longest)
	}
	want := pointsBefore + 5 - 20
	if p.Points != want {
		t.Errorf("Points after Finalize = %d, want %d", p.Points, want)
	}
}
