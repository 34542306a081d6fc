package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"catalog-service/internal/domain"
	"catalog-service/internal/httpx"
)

type addUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var body addUserRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Username = strings.TrimSpace(body.Username)
	if body.Username == "" || body.Password == "" || strings.TrimSpace(body.Fullname) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username, password and fullname are required")
		return
	}

	taken, err := s.store.UsernameTaken(r.Context(), body.Username)
	if err != nil {
		log.Printf("auth: check username: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if taken {
		httpx.WriteError(w, http.StatusConflict, "username already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("auth: hash password: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	id, err := s.store.CreateUser(r.Context(), User{
		ID:           domain.NewID("user"),
		Username:     body.Username,
		Fullname:     strings.TrimSpace(body.Fullname),
		PasswordHash: string(hash),
	})
	if err != nil {
		httpx.WriteDomainError(w, "auth: create user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"userId": id})
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := s.store.FindUserByUsername(r.Context(), creds.Username)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Printf("auth: find user: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	tokens, err := s.issuer.IssueTokens(user.ID)
	if err != nil {
		log.Printf("auth: issue tokens: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tokens)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var body refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "refreshToken is required")
		return
	}

	userID, err := s.issuer.Parse(body.RefreshToken, "refresh")
	if err != nil {
		httpx.WriteDomainError(w, "auth: refresh", err)
		return
	}

	tokens, err := s.issuer.IssueTokens(userID)
	if err != nil {
		log.Printf("auth: issue tokens: %v", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"accessToken": tokens.AccessToken})
}

// Refresh tokens are self-contained, so logout only acknowledges a
// well-formed token. Revocation would need a token store.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var body refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "refreshToken is required")
		return
	}
	if _, err := s.issuer.Parse(body.RefreshToken, "refresh"); err != nil {
		httpx.WriteDomainError(w, "auth: logout", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
