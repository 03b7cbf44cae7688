package server

import (
	"fmt"
	"net/http"
	"time"

	"juggle-backend/internal/auth"
	"juggle-backend/internal/config"
	"juggle-backend/internal/database"
)

// Server holds what the routes need: settings, the database and the token revocation store.
type Server struct {
	cfg       config.Config
	db        *database.DBinstanceStruct
	tokens    *auth.Tokens
	blacklist auth.JwtBlacklistStore
}

// New builds a Server. Routes are registered by RegisterRoutes.
func New(cfg config.Config, db *database.DBinstanceStruct, blacklist auth.JwtBlacklistStore) *Server {
	return &Server{
		cfg:       cfg,
		db:        db,
		tokens:    auth.NewTokens(cfg.Auth),
		blacklist: blacklist,
	}
}

// NewHTTPServer wraps s in an http.Server listening on the configured port.
func NewHTTPServer(s *Server) *http.Server {
	// Declare Server config
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
