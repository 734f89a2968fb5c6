package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Domain errors for cookie decoding.
var (
	ErrInvalidToken = errors.New("invalid session token")
)

// Codec signs and verifies the session cookie value. The cookie carries a
// JWT whose only payload is the server-side session ID, so a tampered
// cookie fails verification before the store is ever consulted.
type Codec struct {
	signingKey []byte
	ttl        time.Duration
}

func NewCodec(signingKey string, ttl time.Duration) *Codec {
	return &Codec{signingKey: []byte(signingKey), ttl: ttl}
}

// Claims defines the signed cookie payload.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// Encode produces the signed cookie value for a session ID.
func (c *Codec) Encode(sessionID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		SessionID: sessionID,
	})
	return token.SignedString(c.signingKey)
}

// Decode verifies the cookie value and returns the embedded session ID.
func (c *Codec) Decode(value string) (string, error) {
	token, err := jwt.ParseWithClaims(value, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.signingKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}
