package catalog

import (
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"catalog-service/internal/httpx"
)

const maxCoverBytes = 512 << 10

// handleUploadCover stores an album cover in object storage and records its
// public URL on the album.
func (s *Server) handleUploadCover(w http.ResponseWriter, r *http.Request) {
	albumID := chi.URLParam(r, "id")

	if _, err := s.store.GetAlbumByID(r.Context(), albumID); err != nil {
		httpx.WriteDomainError(w, "catalog: upload cover", err)
		return
	}

	if err := r.ParseMultipartForm(maxCoverBytes); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("cover")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "cover file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		httpx.WriteError(w, http.StatusBadRequest, "cover must be an image")
		return
	}

	key := "covers/" + albumID + path.Ext(header.Filename)
	url, err := s.files.Put(r.Context(), key, contentType, file, header.Size)
	if err != nil {
		httpx.WriteDomainError(w, "catalog: upload cover", err)
		return
	}

	if err := s.store.SetAlbumCover(r.Context(), albumID, url); err != nil {
		httpx.WriteDomainError(w, "catalog: upload cover", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"coverUrl": url})
}
