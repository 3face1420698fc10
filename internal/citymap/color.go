package citymap

import (
	"encoding/json"
	"fmt"
)

// TrainColor is one of the eight real train-card colors or Wild, which
// matches any real color when claiming a route.
type TrainColor int

const (
	Black TrainColor = iota
	Blue
	Green
	Orange
	Pink
	Red
	White
	Yellow
	Wild
)

// NumTrainColors is the count of all train colors, real and wild.
const NumTrainColors = 9

// NumRealColors is the count of real (non-wild) train colors.
const NumRealColors = 8

// AllTrainColors lists every train color in declaration order.
var AllTrainColors = [NumTrainColors]TrainColor{Black, Blue, Green, Orange, Pink, Red, White, Yellow, Wild}

// RealTrainColors lists the eight non-wild colors.
var RealTrainColors = [NumRealColors]TrainColor{Black, Blue, Green, Orange, Pink, Red, White, Yellow}

var colorNames = [NumTrainColors]string{
	Black:  "black",
	Blue:   "blue",
	Green:  "green",
	Orange: "orange",
	Pink:   "pink",
	Red:    "red",
	White:  "white",
	Yellow: "yellow",
	Wild:   "wild",
}

// String returns the lower-case serialization form of the color.
func (c TrainColor) String() string {
	if c < 0 || int(c) >= NumTrainColors {
		return "unknown"
	}
	return colorNames[c]
}

// ParseTrainColor parses the lower-case wire representation of a color.
func ParseTrainColor(s string) (TrainColor, error) {
	for _, c := range AllTrainColors {
		if colorNames[c] == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("citymap: unrecognized train color %q", s)
}

// MarshalJSON renders the color as its lower-case wire name.
func (c TrainColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses the lower-case wire name back into a TrainColor.
func (c *TrainColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTrainColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// IsReal reports whether c is one of the eight non-wild colors.
func (c TrainColor) IsReal() bool {
	return c >= Black && c <= Yellow
}

// Valid reports whether c is a declared TrainColor value.
func (c TrainColor) Valid() bool {
	return c >= Black && c <= Wild
}

// CardsPerRealColor is the number of cards of each real color in a fresh census.
const CardsPerRealColor = 12

// WildCardCount is the number of wild cards in a fresh census.
const WildCardCount = 14

// TotalTrainCards is the total size of the train-card census (110).
const TotalTrainCards = CardsPerRealColor*NumRealColors + WildCardCount
