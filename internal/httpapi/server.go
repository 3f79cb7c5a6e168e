// Package httpapi exposes rendering over HTTP: submit a graph, get back
// ASCII art, and retrieve a previous render by ID. It is a small,
// single-purpose API, built with go-chi the way the wider example pack's
// services route HTTP: global middleware for request IDs, client IP, and
// timeouts, then a handful of explicit routes.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/asciidag/asciidag/pkg/cache"
	"github.com/asciidag/asciidag/pkg/store"
)

// Server serves the render HTTP API.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	cache      cache.Cache
	store      store.Store
	logger     *log.Logger
}

// NewServer builds a Server listening on addr, backed by ch for render
// caching and st for render persistence.
func NewServer(addr string, ch cache.Cache, st store.Store, logger *log.Logger) *Server {
	s := &Server{cache: ch, store: st, logger: logger}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(s.requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(30 * time.Second))

	router.Get("/healthz", s.handleHealth)
	router.Post("/render", s.handleRender)
	router.Get("/renders/{id}", s.handleGetRender)

	s.router = router
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Router returns the underlying chi router, useful for tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// ListenAndServe starts the HTTP server and blocks until ctx is canceled,
// at which point it shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("httpapi: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Infof("%s %s %d (%s)", r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Millisecond))
	})
}
