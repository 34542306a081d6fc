package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"catalog-service/internal/auth"
	"catalog-service/internal/httpx"
)

type collaborationRequest struct {
	UserID string `json:"userId"`
}

func (s *Server) handleAddCollaboration(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body collaborationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.UserID = strings.TrimSpace(body.UserID)
	if body.UserID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "userId is required")
		return
	}

	id, err := addCollaboration(r.Context(), s.store, playlistID, ownerID, body.UserID)
	if err != nil {
		httpx.WriteDomainError(w, "playlist: add collaboration", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"collaborationId": id})
}

func (s *Server) handleDeleteCollaboration(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body collaborationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.UserID = strings.TrimSpace(body.UserID)
	if body.UserID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if err := removeCollaboration(r.Context(), s.store, playlistID, ownerID, body.UserID); err != nil {
		httpx.WriteDomainError(w, "playlist: delete collaboration", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
