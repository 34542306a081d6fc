package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"catalog-service/internal/auth"
	"catalog-service/internal/domain"
	"catalog-service/internal/httpx"
)

func (s *Server) handleAddPlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := s.store.InsertPlaylist(r.Context(), domain.NewID("playlist"), body.Name, userID)
	if err != nil {
		httpx.WriteDomainError(w, "playlist: add playlist", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"playlistId": id})
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}

	playlists, err := s.store.ListPlaylists(r.Context(), userID)
	if err != nil {
		httpx.WriteDomainError(w, "playlist: list playlists", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, playlists)
}

func (s *Server) handleRenamePlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := authorize(r.Context(), s.store, playlistID, userID, accessOwner); err != nil {
		httpx.WriteDomainError(w, "playlist: rename playlist", err)
		return
	}

	if err := s.store.RenamePlaylist(r.Context(), playlistID, body.Name); err != nil {
		httpx.WriteDomainError(w, "playlist: rename playlist", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}
	playlistID := chi.URLParam(r, "id")

	if err := authorize(r.Context(), s.store, playlistID, userID, accessOwner); err != nil {
		httpx.WriteDomainError(w, "playlist: delete playlist", err)
		return
	}

	if err := s.store.DeletePlaylist(r.Context(), playlistID); err != nil {
		httpx.WriteDomainError(w, "playlist: delete playlist", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
