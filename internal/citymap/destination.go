package citymap

// DestinationCard is a contract between two cities: fulfilling it (the
// player's claimed routes connect the endpoints by game end) gains Points;
// failing to fulfill it loses Points.
type DestinationCard struct {
	Endpoints Pair  `json:"endpoints"`
	Points    uint8 `json:"points"`
}

// dest is a terse constructor used only to build the fixed catalog below.
func dest(a, b City, points uint8) DestinationCard {
	return DestinationCard{Endpoints: Pair{A: a, B: b}, Points: points}
}

// destinationCatalog holds the thirty fixed destination cards.
var destinationCatalog = [30]DestinationCard{
	dest(Boston, Miami, 12),
	dest(Calgary, Phoenix, 13),
	dest(Calgary, SaltLakeCity, 7),
	dest(Chicago, NewOrleans, 7),
	dest(Chicago, SantaFe, 9),
	dest(Dallas, NewYork, 11),
	dest(Denver, ElPaso, 4),
	dest(Denver, Pittsburgh, 11),
	dest(Duluth, ElPaso, 10),
	dest(Duluth, Houston, 8),
	dest(Helena, LosAngeles, 8),
	dest(KansasCity, Houston, 5),
	dest(LosAngeles, Chicago, 16),
	dest(LosAngeles, Miami, 20),
	dest(LosAngeles, NewYork, 21),
	dest(Montreal, Atlanta, 9),
	dest(Montreal, NewOrleans, 13),
	dest(NewYork, Atlanta, 6),
	dest(Portland, Nashville, 17),
	dest(Portland, Phoenix, 11),
	dest(SanFrancisco, Atlanta, 17),
	dest(SaultStMarie, Nashville, 8),
	dest(SaultStMarie, OklahomaCity, 9),
	dest(Seattle, LosAngeles, 9),
	dest(Seattle, NewYork, 22),
	dest(Toronto, Miami, 10),
	dest(Vancouver, Montreal, 20),
	dest(Vancouver, SantaFe, 13),
	dest(Winnipeg, Houston, 12),
	dest(Winnipeg, LittleRock, 11),
}

// FixedDestinationCards returns a fresh copy of the 30 fixed destination
// cards (the caller owns the returned slice and may shuffle it freely).
func FixedDestinationCards() []DestinationCard {
	out := make([]DestinationCard, len(destinationCatalog))
	copy(out, destinationCatalog[:])
	return out
}
