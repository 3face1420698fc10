package citymap

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTrainColorMarshalUnmarshalRoundTrip(t *testing.T) {
	for _, c := range AllTrainColors {
		data, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", c, err)
		}
		var round TrainColor
		if err := json.Unmarshal(data, &round); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if round != c {
			t.Fatalf("round trip = %v, want %v", round, c)
		}
	}
}

func TestTrainColorMarshalsLowerCase(t *testing.T) {
	data, err := json.Marshal(Red)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"red"` {
		t.Fatalf("Marshal(Red) = %s, want \"red\"", data)
	}
}

func TestParseTrainColorRejectsUnknown(t *testing.T) {
	if _, err := ParseTrainColor("scarlet"); err == nil {
		t.Fatalf("expected error for unknown color name")
	}
}

func TestUnmarshalTrainColorRejectsUnknown(t *testing.T) {
	var c TrainColor
	err := json.Unmarshal([]byte(`"scarlet"`), &c)
	if err == nil {
		t.Fatalf("expected error for unknown color name")
	}
	if !strings.Contains(err.Error(), "scarlet") {
		t.Fatalf("error %v should mention the unrecognized name", err)
	}
}

func TestIsRealExcludesWild(t *testing.T) {
	if Wild.IsReal() {
		t.Fatalf("Wild should not be real")
	}
	for _, c := range RealTrainColors {
		if !c.IsReal() {
			t.Fatalf("%v should be real", c)
		}
	}
}
