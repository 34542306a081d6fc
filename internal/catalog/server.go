package catalog

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// FileStore stores uploaded objects and returns their public URL.
type FileStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)
}

type Server struct {
	store Store
	cache Cache
	files FileStore
}

func NewServer(store Store, cache Cache, files FileStore) *Server {
	return &Server{store: store, cache: cache, files: files}
}

// AlbumsRouter serves albums, cover uploads and likes. Like mutations need
// an authenticated principal; everything else is public, matching the
// original API surface.
func (s *Server) AlbumsRouter(authMW func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", s.handleAddAlbum)
	r.Get("/", s.handleListAlbums)
	r.Get("/{id}", s.handleGetAlbum)
	r.Put("/{id}", s.handleEditAlbum)
	r.Delete("/{id}", s.handleDeleteAlbum)

	r.Post("/{id}/covers", s.handleUploadCover)

	r.Get("/{id}/likes", s.handleGetAlbumLikes)
	r.Group(func(r chi.Router) {
		r.Use(authMW)
		r.Post("/{id}/likes", s.handleAddAlbumLike)
		r.Delete("/{id}/likes", s.handleDeleteAlbumLike)
	})

	return r
}

func (s *Server) SongsRouter() chi.Router {
	r := chi.NewRouter()

	r.Post("/", s.handleAddSong)
	r.Get("/", s.handleListSongs)
	r.Get("/{id}", s.handleGetSong)
	r.Put("/{id}", s.handleEditSong)
	r.Delete("/{id}", s.handleDeleteSong)

	return r
}
