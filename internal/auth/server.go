package auth

import (
	"github.com/go-chi/chi/v5"
)

type Server struct {
	store  Store
	issuer *TokenIssuer
}

func NewServer(store Store, issuer *TokenIssuer) *Server {
	return &Server{store: store, issuer: issuer}
}

func (s *Server) UsersRouter() chi.Router {
	r := chi.NewRouter()
	r.Post("/", s.handleAddUser)
	return r
}

func (s *Server) AuthenticationsRouter() chi.Router {
	r := chi.NewRouter()
	r.Post("/", s.handleLogin)
	r.Put("/", s.handleRefresh)
	r.Delete("/", s.handleLogout)
	return r
}
