package catalog

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"catalog-service/internal/domain"
	"catalog-service/internal/httpx"
)

type songRequest struct {
	Title     string  `json:"title"`
	Genre     string  `json:"genre"`
	Performer string  `json:"performer"`
	Duration  int     `json:"duration"`
	Year      int     `json:"year"`
	AlbumID   *string `json:"albumId"`
}

func (sr *songRequest) validate() string {
	sr.Title = strings.TrimSpace(sr.Title)
	sr.Genre = strings.TrimSpace(sr.Genre)
	sr.Performer = strings.TrimSpace(sr.Performer)
	if sr.Title == "" || sr.Genre == "" || sr.Performer == "" {
		return "title, genre and performer are required"
	}
	if sr.Duration <= 0 || sr.Year == 0 {
		return "duration and year are required"
	}
	return ""
}

func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	var body songRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := body.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	id, err := s.store.InsertSong(r.Context(), Song{
		ID:        domain.NewID("song"),
		Title:     body.Title,
		Genre:     body.Genre,
		Performer: body.Performer,
		Duration:  body.Duration,
		Year:      body.Year,
		AlbumID:   body.AlbumID,
	})
	if err != nil {
		httpx.WriteDomainError(w, "catalog: add song", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"songId": id})
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	song, err := s.store.GetSongByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteDomainError(w, "catalog: get song", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, song)
}

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	performer := r.URL.Query().Get("performer")

	songs, err := s.store.ListSongs(r.Context(), title, performer)
	if err != nil {
		httpx.WriteDomainError(w, "catalog: list songs", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, songs)
}

func (s *Server) handleEditSong(w http.ResponseWriter, r *http.Request) {
	var body songRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := body.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	err := s.store.UpdateSong(r.Context(), Song{
		ID:        chi.URLParam(r, "id"),
		Title:     body.Title,
		Genre:     body.Genre,
		Performer: body.Performer,
		Duration:  body.Duration,
		Year:      body.Year,
		AlbumID:   body.AlbumID,
	})
	if err != nil {
		httpx.WriteDomainError(w, "catalog: edit song", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteSong(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteDomainError(w, "catalog: delete song", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
