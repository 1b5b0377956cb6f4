package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/liorae/liora/internal/config"
	"github.com/liorae/liora/internal/httpserver/middleware"
	"github.com/liorae/liora/internal/observability"

	"go.uber.org/zap"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.Config,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	return &Server{
		config:      cfg.Server,
		handler:     handler,
		middlewares: middlewares,
		srv:         nil,
	}
}

// routes builds the request mux. Method patterns reject wrong verbs at
// the router, so handlers only ever see the method they declare.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handler.HandleHome)
	mux.HandleFunc("GET /about", s.handler.HandleAbout)
	mux.HandleFunc("GET /api/content", s.handler.HandleContent)
	mux.HandleFunc("POST /contact/submit", s.handler.HandleContactSubmit)
	mux.HandleFunc("POST /chat", s.handler.HandleChat)
	mux.HandleFunc("POST /chat/start", s.handler.HandleChatStart)
	mux.HandleFunc("POST /chat/send", s.handler.HandleChatSend)
	mux.HandleFunc("GET /chat/health", s.handler.HandleChatHealth)
	mux.HandleFunc("POST /chat/reset", s.handler.HandleChatReset)
	mux.HandleFunc("GET /health", s.handler.HandleHealth)
	return mux
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	// Apply middleware chain.
	handlerWithMiddleware := s.middlewares(s.routes())

	// Create server with timeouts.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      handlerWithMiddleware,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", zap.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
