package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"catalog-service/internal/domain"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer([]byte("test-secret"), 15*time.Minute, 7*24*time.Hour)
}

func TestTokenRoundtrip(t *testing.T) {
	issuer := testIssuer()

	tokens, err := issuer.IssueTokens("user-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	userID, err := issuer.Parse(tokens.AccessToken, "access")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	userID, err = issuer.Parse(tokens.RefreshToken, "refresh")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseRejectsWrongTokenType(t *testing.T) {
	issuer := testIssuer()
	tokens, err := issuer.IssueTokens("user-1")
	assert.NoError(t, err)

	_, err = issuer.Parse(tokens.RefreshToken, "access")
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))

	_, err = issuer.Parse(tokens.AccessToken, "refresh")
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), -time.Minute, -time.Minute)
	tokens, err := issuer.IssueTokens("user-1")
	assert.NoError(t, err)

	_, err = issuer.Parse(tokens.AccessToken, "access")
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestParseRejectsForeignSignature(t *testing.T) {
	other := NewTokenIssuer([]byte("another-secret"), 15*time.Minute, time.Hour)
	tokens, err := other.IssueTokens("user-1")
	assert.NoError(t, err)

	_, err = testIssuer().Parse(tokens.AccessToken, "access")
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestMiddleware(t *testing.T) {
	issuer := testIssuer()
	var seen string
	handler := Middleware(issuer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PrincipalID(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing header is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		tokens, err := issuer.IssueTokens("user-1")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokens.RefreshToken)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid access token resolves the principal", func(t *testing.T) {
		tokens, err := issuer.IssueTokens("user-1")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", seen)
	})
}
