package session

import (
	"errors"
	"testing"
	"time"
)

func TestMintAndValidateRoundTrip(t *testing.T) {
	key := []byte("test-signing-key")
	claims := Claims{GameID: "game-123", PlayerID: 7}

	tok, err := Mint(key, claims, time.Hour)
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	got, err := Validate(key, tok, "game-123")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if got != claims {
		t.Fatalf("Validate() = %+v, want %+v", got, claims)
	}
}

func TestValidateRejectsWrongGame(t *testing.T) {
	key := []byte("test-signing-key")
	tok, err := Mint(key, Claims{GameID: "game-123", PlayerID: 7}, time.Hour)
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	if _, err := Validate(key, tok, "game-456"); !errors.Is(err, ErrGameMismatch) {
		t.Fatalf("err = %v, want ErrGameMismatch", err)
	}
}

func TestValidateRejectsWrongKey(t *testing.T) {
	tok, err := Mint([]byte("key-a"), Claims{GameID: "game-123", PlayerID: 7}, time.Hour)
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	if _, err := Validate([]byte("key-b"), tok, "game-123"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	key := []byte("test-signing-key")
	tok, err := Mint(key, Claims{GameID: "game-123", PlayerID: 7}, -time.Minute)
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	if _, err := Validate(key, tok, "game-123"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestMintRejectsEmptyKey(t *testing.T) {
	if _, err := Mint(nil, Claims{GameID: "g", PlayerID: 1}, time.Hour); !errors.Is(err, ErrMissingSigningKey) {
		t.Fatalf("err = %v, want ErrMissingSigningKey", err)
	}
}
