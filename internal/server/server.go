package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server around the configured router.
type Server struct {
	http *http.Server
}

// New creates a server listening on addr.
func New(addr string, router *gin.Engine) *Server {
	return &Server{
		http: &http.Server{
			Addr:    addr,
			Handler: router,
		},
	}
}

// Start serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	log.Printf("[Server] listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
