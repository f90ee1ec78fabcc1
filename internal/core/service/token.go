package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/trashgo/delivery-api/internal/core/domain"
)

// DefaultTokenTTL is the expiry window applied when none is configured.
const DefaultTokenTTL = 20 * time.Minute

// tokenClaims is the signed claim set embedded in every access token.
type tokenClaims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed access tokens. It is purely
// functional over the secret configured at startup; tokens signed with any
// other algorithm are rejected outright, no negotiation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a signed token carrying the user's identity claims with an
// expiry of now + TTL.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a raw token and reconstructs the Principal.
// Signature mismatch, malformed structure, expiry in the past, and missing
// identity claims all fail with ErrInvalidToken.
func (s *TokenService) Verify(raw string) (domain.Principal, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	if claims.Subject == "" || claims.UserID == "" {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{
		UserID:   claims.UserID,
		Username: claims.Subject,
		Role:     domain.Role(claims.Role),
	}, nil
}
