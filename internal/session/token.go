// Package session mints and validates the host-signed session tokens that
// bind a caller to a (game_id, player_id) pair, per the external-interface
// boundary described for the HTTP collaborator.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

var (
	// ErrMissingSigningKey indicates Mint or Validate was called with an empty key.
	ErrMissingSigningKey = errors.New("session: signing key is empty")
	// ErrInvalidToken indicates the token failed signature or claim validation.
	ErrInvalidToken = errors.New("session: invalid or expired token")
	// ErrGameMismatch indicates the token is bound to a different game than requested.
	ErrGameMismatch = errors.New("session: token is not bound to this game")
)

// Claims identifies the (game, player) pair a session token is bound to.
type Claims struct {
	GameID   string
	PlayerID int64
}

// Mint signs a new session token binding claims to the given game, expiring
// after ttl.
func Mint(signingKey []byte, claims Claims, ttl time.Duration) (string, error) {
	if len(signingKey) == 0 {
		return "", ErrMissingSigningKey
	}
	jwtClaims := jwt.MapClaims{
		"game_id":   claims.GameID,
		"player_id": claims.PlayerID,
		"exp":       time.Now().Add(ttl).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString(signingKey)
}

// Validate parses and verifies tokenString, returning its claims only if the
// signature and expiry check out and the bound game matches expectedGameID.
func Validate(signingKey []byte, tokenString, expectedGameID string) (Claims, error) {
	if len(signingKey) == 0 {
		return Claims{}, ErrMissingSigningKey
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}
		return signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	gameID, _ := mapClaims["game_id"].(string)
	playerIDFloat, _ := mapClaims["player_id"].(float64)
	if gameID == "" {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{GameID: gameID, PlayerID: int64(playerIDFloat)}
	if claims.GameID != expectedGameID {
		return Claims{}, fmt.Errorf("%w: token bound to %q, requested %q", ErrGameMismatch, claims.GameID, expectedGameID)
	}
	return claims, nil
}
