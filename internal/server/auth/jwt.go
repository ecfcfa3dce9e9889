package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates HS256 access tokens whose subject is a
// username. It holds no per-token state; a token is valid while its
// signature checks out and its expiry is in the future.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewTokenService copies secretKey so later changes by the caller cannot
// affect signing.
func NewTokenService(secretKey []byte, ttl time.Duration) *TokenService {
	key := make([]byte, len(secretKey))
	copy(key, secretKey)
	return &TokenService{secretKey: key, ttl: ttl, now: time.Now}
}

// TTL is the lifetime given to every issued token.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for subject expiring TTL from now. Each token gets a
// random ID, so two tokens for the same subject never coincide.
func (s *TokenService) Issue(subject string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		ID:        uuid.NewString(),
	})

	return token.SignedString(s.secretKey)
}

// Validate returns the subject of tokenString. An expired but otherwise
// sound token yields common.ErrTokenExpired; anything else wrong with it
// yields common.ErrInvalidToken.
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
