// Package auth holds the credential primitives of the server: password
// hashing, access token issuance/verification and the optional token
// revocation list.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of an access token: the standard registered claims
// plus the id of the identity the token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// TokenManager issues and verifies HS256 access tokens. The signing key is
// handed over once at construction and never exposed afterwards.
type TokenManager struct {
	secretKey []byte
	validity  time.Duration
	now       func() time.Time
}

func NewTokenManager(secretKey []byte, validity time.Duration) *TokenManager {
	return &TokenManager{secretKey: secretKey, validity: validity, now: time.Now}
}

// Validity is the lifetime of every issued token.
func (m *TokenManager) Validity() time.Duration {
	return m.validity
}

// Issue mints a token for userID that expires Validity() from now.
func (m *TokenManager) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("empty subject id")
	}

	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return tokenString, nil
}

// Verify checks signing method, signature, structure and expiry. Every
// failure is reported as common.ErrInvalidToken; expired tokens additionally
// match common.ErrTokenExpired.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return m.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
