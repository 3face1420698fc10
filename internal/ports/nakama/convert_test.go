package nakama

import (
	"testing"

	cm "ticketroute/internal/citymap"
	"ticketroute/internal/manager"
	"ticketroute/internal/player"
)

func TestToPair(t *testing.T) {
	got := toPair([2]int{int(cm.Boston), int(cm.Miami)})
	want := cm.Pair{A: cm.Boston, B: cm.Miami}
	if got != want {
		t.Fatalf("toPair() = %+v, want %+v", got, want)
	}
}

func TestToHand(t *testing.T) {
	hand, err := toHand([]string{"red", "wild"})
	if err != nil {
		t.Fatalf("toHand failed: %v", err)
	}
	want := []cm.TrainColor{cm.Red, cm.Wild}
	if len(hand) != len(want) || hand[0] != want[0] || hand[1] != want[1] {
		t.Fatalf("toHand() = %v, want %v", hand, want)
	}
}

func TestToHandRejectsUnknownColor(t *testing.T) {
	if _, err := toHand([]string{"scarlet"}); err == nil {
		t.Fatal("expected error for unknown color name")
	}
}

func TestToColor(t *testing.T) {
	for _, c := range player.AllColors {
		got, err := toColor(string(c))
		if err != nil {
			t.Fatalf("toColor(%q) failed: %v", c, err)
		}
		if got != c {
			t.Fatalf("toColor(%q) = %q, want %q", c, got, c)
		}
	}
}

func TestToColorRejectsUnknown(t *testing.T) {
	if _, err := toColor("scarlet"); err != manager.ErrUnknownColor {
		t.Fatalf("err = %v, want ErrUnknownColor", err)
	}
}

func TestErrorResponseCarriesMessage(t *testing.T) {
	resp := errorResponse(manager.ErrNotYourTurn)
	if resp.Success {
		t.Fatal("errorResponse should not report success")
	}
	if resp.ErrorMessage == nil || *resp.ErrorMessage != manager.ErrNotYourTurn.Error() {
		t.Fatalf("ErrorMessage = %v, want %q", resp.ErrorMessage, manager.ErrNotYourTurn.Error())
	}
}

func TestSuccessResponse(t *testing.T) {
	resp := successResponse()
	if !resp.Success || resp.ErrorMessage != nil {
		t.Fatalf("successResponse() = %+v, want Success=true ErrorMessage=nil", resp)
	}
}
