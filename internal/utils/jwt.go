package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token parse failures are distinguished for logging only; clients always
// receive one generic invalid-token response.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenInvalid   = errors.New("token is invalid")
)

// NewAccessToken builds and signs an HS256 access token for a user. The
// claim set carries the user ID as subject, the expiry at now+ttl, and the
// issue time. Nothing is persisted; the token is self-contained.
func NewAccessToken(secret string, userID uint64, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAccessToken verifies the signature and expiry of a token and returns
// its subject as a user ID. Failures map onto the sentinel errors above.
func ParseAccessToken(secret, raw string) (uint64, error) {
	tok, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrTokenSignature
		default:
			return 0, ErrTokenInvalid
		}
	}
	if !tok.Valid {
		return 0, ErrTokenInvalid
	}
	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, ErrTokenInvalid
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	return id, nil
}
