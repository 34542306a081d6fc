package playlist

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Publisher submits fire-and-forget messages to the job queue.
type Publisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

type Server struct {
	store     Store
	publisher Publisher
}

func NewServer(store Store, publisher Publisher) *Server {
	return &Server{store: store, publisher: publisher}
}

// Router serves everything under /playlists. All routes require an
// authenticated principal.
func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Post("/", s.handleAddPlaylist)
	r.Get("/", s.handleListPlaylists)
	r.Put("/{id}", s.handleRenamePlaylist)
	r.Delete("/{id}", s.handleDeletePlaylist)

	r.Post("/{id}/songs", s.handleAddSong)
	r.Get("/{id}/songs", s.handleListSongs)
	r.Delete("/{id}/songs", s.handleDeleteSong)

	r.Get("/{id}/activities", s.handleListActivities)

	r.Post("/{id}/collaborations", s.handleAddCollaboration)
	r.Delete("/{id}/collaborations", s.handleDeleteCollaboration)

	return r
}

// ExportRouter serves POST /export/playlists/{id}.
func (s *Server) ExportRouter(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Post("/playlists/{id}", s.handleExportPlaylist)

	return r
}
