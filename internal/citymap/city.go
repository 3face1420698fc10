// Package citymap enumerates the fixed catalog of cities and train-card
// colors shared by the card dealer and the route graph.
package citymap

import "encoding/json"

// City is one of the 36 named cities on the board. The zero value and every
// other value up to NumCities-1 is valid; City has a fixed total order that
// is also its declaration order, matching the serialization convention of
// transmitting cities as integers in [0, 35].
type City int

// NumCities is the total number of cities on the board.
const NumCities = 36

const (
	Atlanta City = iota
	Boston
	Calgary
	Charleston
	Chicago
	Dallas
	Denver
	Duluth
	ElPaso
	Helena
	Houston
	KansasCity
	LasVegas
	LittleRock
	LosAngeles
	Miami
	Montreal
	Nashville
	NewOrleans
	NewYork
	OklahomaCity
	Omaha
	Phoenix
	Pittsburgh
	Portland
	Raleigh
	SaintLouis
	SaltLakeCity
	SanFrancisco
	SantaFe
	SaultStMarie
	Seattle
	Toronto
	Vancouver
	Washington
	Winnipeg
)

var cityNames = [NumCities]string{
	Atlanta:      "Atlanta",
	Boston:       "Boston",
	Calgary:      "Calgary",
	Charleston:   "Charleston",
	Chicago:      "Chicago",
	Dallas:       "Dallas",
	Denver:       "Denver",
	Duluth:       "Duluth",
	ElPaso:       "El Paso",
	Helena:       "Helena",
	Houston:      "Houston",
	KansasCity:   "Kansas City",
	LasVegas:     "Las Vegas",
	LittleRock:   "Little Rock",
	LosAngeles:   "Los Angeles",
	Miami:        "Miami",
	Montreal:     "Montreal",
	Nashville:    "Nashville",
	NewOrleans:   "New Orleans",
	NewYork:      "New York",
	OklahomaCity: "Oklahoma City",
	Omaha:        "Omaha",
	Phoenix:      "Phoenix",
	Pittsburgh:   "Pittsburgh",
	Portland:     "Portland",
	Raleigh:      "Raleigh",
	SaintLouis:   "Saint Louis",
	SaltLakeCity: "Salt Lake City",
	SanFrancisco: "San Francisco",
	SantaFe:      "Santa Fe",
	SaultStMarie: "Sault St. Marie",
	Seattle:      "Seattle",
	Toronto:      "Toronto",
	Vancouver:    "Vancouver",
	Washington:   "Washington",
	Winnipeg:     "Winnipeg",
}

// String returns the human-readable city name.
func (c City) String() string {
	if c < 0 || int(c) >= NumCities {
		return "unknown city"
	}
	return cityNames[c]
}

// Valid reports whether c is one of the 36 declared cities.
func (c City) Valid() bool {
	return c >= 0 && int(c) < NumCities
}

// Pair is an ordered pair of cities used as a directed map key. The route
// graph stores both (A, B) and (B, A) bound to the same underlying segments.
type Pair struct {
	A, B City
}

// Reversed returns the pair with endpoints swapped.
func (p Pair) Reversed() Pair {
	return Pair{A: p.B, B: p.A}
}

// MarshalJSON renders the pair as the wire convention's [city_a, city_b] array.
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]City{p.A, p.B})
}

// UnmarshalJSON parses a [city_a, city_b] array back into a Pair.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var arr [2]City
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	p.A, p.B = arr[0], arr[1]
	return nil
}
