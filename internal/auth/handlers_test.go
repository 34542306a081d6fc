package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"catalog-service/internal/domain"
)

func TestHandleAddUser(t *testing.T) {
	t.Run("registers a new user", func(t *testing.T) {
		store := new(MockStore)
		store.On("UsernameTaken", mock.Anything, "alice").Return(false, nil)
		store.On("CreateUser", mock.Anything, mock.MatchedBy(func(u User) bool {
			return u.Username == "alice" && strings.HasPrefix(u.ID, "user-") && u.PasswordHash != "secret"
		})).Return("user-1", nil)

		s := NewServer(store, testIssuer())
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice","password":"secret","fullname":"Alice A"}`))
		w := httptest.NewRecorder()
		s.UsersRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"userId":"user-1"}`, w.Body.String())
		store.AssertExpectations(t)
	})

	t.Run("taken username is 409", func(t *testing.T) {
		store := new(MockStore)
		store.On("UsernameTaken", mock.Anything, "alice").Return(true, nil)

		s := NewServer(store, testIssuer())
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice","password":"secret","fullname":"Alice A"}`))
		w := httptest.NewRecorder()
		s.UsersRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		store.AssertNotCalled(t, "CreateUser")
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		store := new(MockStore)
		s := NewServer(store, testIssuer())
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice"}`))
		w := httptest.NewRecorder()
		s.UsersRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		store.AssertNotCalled(t, "UsernameTaken")
	})
}

func TestHandleLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)
	alice := &User{ID: "user-1", Username: "alice", PasswordHash: string(hash)}

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		store := new(MockStore)
		store.On("FindUserByUsername", mock.Anything, "alice").Return(alice, nil)

		issuer := testIssuer()
		s := NewServer(store, issuer)
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice","password":"secret"}`))
		w := httptest.NewRecorder()
		s.AuthenticationsRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var tokens AuthTokens
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokens))
		userID, err := issuer.Parse(tokens.AccessToken, "access")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		store := new(MockStore)
		store.On("FindUserByUsername", mock.Anything, "alice").Return(alice, nil)

		s := NewServer(store, testIssuer())
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice","password":"wrong"}`))
		w := httptest.NewRecorder()
		s.AuthenticationsRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user is 401, not 404", func(t *testing.T) {
		store := new(MockStore)
		store.On("FindUserByUsername", mock.Anything, "ghost").Return(nil, domain.NotFound("user not found"))

		s := NewServer(store, testIssuer())
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"ghost","password":"secret"}`))
		w := httptest.NewRecorder()
		s.AuthenticationsRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleRefresh(t *testing.T) {
	t.Run("refresh token yields a new access token", func(t *testing.T) {
		issuer := testIssuer()
		tokens, err := issuer.IssueTokens("user-1")
		assert.NoError(t, err)

		s := NewServer(new(MockStore), issuer)
		req := httptest.NewRequest("PUT", "/", strings.NewReader(`{"refreshToken":"`+tokens.RefreshToken+`"}`))
		w := httptest.NewRecorder()
		s.AuthenticationsRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		userID, err := issuer.Parse(body["accessToken"], "access")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("access token cannot be refreshed", func(t *testing.T) {
		issuer := testIssuer()
		tokens, err := issuer.IssueTokens("user-1")
		assert.NoError(t, err)

		s := NewServer(new(MockStore), issuer)
		req := httptest.NewRequest("PUT", "/", strings.NewReader(`{"refreshToken":"`+tokens.AccessToken+`"}`))
		w := httptest.NewRecorder()
		s.AuthenticationsRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
