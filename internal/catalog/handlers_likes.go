package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"catalog-service/internal/auth"
	"catalog-service/internal/httpx"
)

func (s *Server) handleGetAlbumLikes(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "id")

	result, err := getAlbumLikes(r.Context(), s.store, s.cache, albumID)
	if err != nil {
		httpx.WriteDomainError(w, "catalog: get album likes", err)
		return
	}

	if result.FromCache {
		w.Header().Set("X-Data-Source", "cache")
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]int{"likes": result.Count})
}

func (s *Server) handleAddAlbumLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}
	albumID := chi.URLParam(r, "id")

	// The album must exist before it can be liked.
	if _, err := s.store.GetAlbumByID(r.Context(), albumID); err != nil {
		httpx.WriteDomainError(w, "catalog: add album like", err)
		return
	}

	if _, err := addAlbumLike(r.Context(), s.store, s.cache, albumID, userID); err != nil {
		httpx.WriteDomainError(w, "catalog: add album like", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) handleDeleteAlbumLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.PrincipalID(r)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "missing principal")
		return
	}
	albumID := chi.URLParam(r, "id")

	if _, err := s.store.GetAlbumByID(r.Context(), albumID); err != nil {
		httpx.WriteDomainError(w, "catalog: delete album like", err)
		return
	}

	if err := removeAlbumLike(r.Context(), s.store, s.cache, albumID, userID); err != nil {
		httpx.WriteDomainError(w, "catalog: delete album like", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
