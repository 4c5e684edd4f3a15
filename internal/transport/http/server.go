package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/samber/oops"
	sloghttp "github.com/samber/slog-http"
)

// Server answers every request with 200 OK through net/http. Requests that
// net/http itself rejects as malformed get its 400 instead; use Responder
// when those must succeed too.
type Server struct {
	port   int
	logger *slog.Logger
}

// New creates a new HTTP liveness server
func New(port int) *Server {
	return &Server{
		port:   port,
		logger: slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler returns the catch-all liveness handler wrapped in request logging
// and panic recovery.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleLiveness)

	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Serve listens on the configured port until ctx is cancelled
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return oops.With("addr", addr).Wrap(err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on an existing listener and shuts down gracefully
// when ctx is cancelled.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Liveness server shutdown failed", "error", err)
		}
	}()

	s.logger.Info("Health server running", "addr", ln.Addr().String(), "mode", "http")
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return oops.With("addr", ln.Addr().String()).Wrap(err)
	}
	return nil
}

func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Connection", "close")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(livenessBody))
}
