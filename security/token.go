package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// AccessAuth is the only access scope this system issues
const AccessAuth = "auth"

// ErrInvalidToken covers every way a token can fail verification:
// bad signature, wrong algorithm, malformed payload or missing claims.
// Callers treat it as "not authenticated"
var ErrInvalidToken = errors.New("invalid auth token")

// AuthClaims is the verified payload of an auth token
type AuthClaims struct {
	UserID string
	Access string
}

// TokenMaker signs and verifies auth tokens against a single secret
// that is injected at construction and constant for its lifetime
type TokenMaker struct {
	secret []byte
}

func NewTokenMaker(secret string) *TokenMaker {
	return &TokenMaker{secret: []byte(secret)}
}

// Issue signs a token binding userID to the auth scope. Tokens carry no
// expiry. A session ends only when its token is removed from the user's
// stored token list. The jti nonce keeps two logins in the same second
// from minting the same token string
func (m *TokenMaker) Issue(userID string) (string, error) {
	jti, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"access":  AccessAuth,
		"iat":     time.Now().Unix(),
		"jti":     jti,
	})

	return t.SignedString(m.secret)
}

// Verify checks the signature and shape of tokenStr and returns its
// claims. Nothing from the payload is returned unless the signature
// checked out first
func (m *TokenMaker) Verify(tokenStr string) (*AuthClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}

	access, ok := claims["access"].(string)
	if !ok || access == "" {
		return nil, ErrInvalidToken
	}

	return &AuthClaims{
		UserID: userID,
		Access: access,
	}, nil
}
