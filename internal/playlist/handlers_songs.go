package playlist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"catalog-service/internal/auth"
	"catalog-service/internal/httpx"
)

type songRequest struct {
	SongID string `json:"songId"`
}

func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body songRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.SongID = strings.TrimSpace(body.SongID)
	if body.SongID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "songId is required")
		return
	}

	id, err := addSong(r.Context(), s.store, playlistID, userID, body.SongID)
	if err != nil {
		httpx.WriteDomainError(w, "playlist: add song", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"playlistSongId": id})
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}
	playlistID := chi.URLParam(r, "id")

	p, err := listSongs(r.Context(), s.store, playlistID, userID)
	if err != nil {
		httpx.WriteDomainError(w, "playlist: list songs", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}
	playlistID := chi.URLParam(r, "id")

	var body songRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.SongID = strings.TrimSpace(body.SongID)
	if body.SongID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "songId is required")
		return
	}

	if err := removeSong(r.Context(), s.store, playlistID, userID, body.SongID); err != nil {
		httpx.WriteDomainError(w, "playlist: delete song", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}
	playlistID := chi.URLParam(r, "id")

	activities, err := listActivities(r.Context(), s.store, playlistID, userID)
	if err != nil {
		httpx.WriteDomainError(w, "playlist: list activities", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"playlistId": playlistID,
		"activities": activities,
	})
}
