package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"catalog-service/internal/domain"
)

type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(secret []byte, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (ti *TokenIssuer) IssueTokens(userID string) (AuthTokens, error) {
	now := time.Now()

	access, err := ti.sign(userID, "access", now, ti.accessTTL)
	if err != nil {
		return AuthTokens{}, err
	}
	refresh, err := ti.sign(userID, "refresh", now, ti.refreshTTL)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}

func (ti *TokenIssuer) sign(userID, typ string, now time.Time, ttl time.Duration) (string, error) {
	claims := &TokenClaims{
		UserID:    userID,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
}

// Parse validates a token of the given type ("access" or "refresh") and
// returns the principal id it carries.
func (ti *TokenIssuer) Parse(raw, typ string) (string, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	})
	if err != nil || !token.Valid || claims.TokenType != typ {
		return "", domain.Unauthorized("invalid token")
	}
	return claims.UserID, nil
}
