package catalog

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"catalog-service/internal/domain"
	"catalog-service/internal/httpx"
)

type albumRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

func (s *Server) handleAddAlbum(w http.ResponseWriter, r *http.Request) {
	var body albumRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" || body.Year == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "name and year are required")
		return
	}

	id, err := s.store.InsertAlbum(r.Context(), Album{
		ID:   domain.NewID("album"),
		Name: body.Name,
		Year: body.Year,
	})
	if err != nil {
		httpx.WriteDomainError(w, "catalog: add album", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"albumId": id})
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := s.store.GetAlbumByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteDomainError(w, "catalog: get album", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, album)
}

func (s *Server) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := s.store.ListAlbums(r.Context())
	if err != nil {
		httpx.WriteDomainError(w, "catalog: list albums", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, albums)
}

func (s *Server) handleEditAlbum(w http.ResponseWriter, r *http.Request) {
	var body albumRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" || body.Year == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "name and year are required")
		return
	}

	if err := s.store.UpdateAlbum(r.Context(), chi.URLParam(r, "id"), body.Name, body.Year); err != nil {
		httpx.WriteDomainError(w, "catalog: edit album", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDeleteAlbum(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteAlbum(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteDomainError(w, "catalog: delete album", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
