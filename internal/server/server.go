// Package server exposes the scraper over HTTP. One endpoint does the
// work: POST /api/scrape/{platform} with a JSON body naming the course
// URL returns the extracted record.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/logger"
	"github.com/coursepeek/coursepeek/pkg/adapter"
	"github.com/coursepeek/coursepeek/pkg/course"
)

// CourseScraper is the scraping dependency; the adapter dispatcher
// satisfies it.
type CourseScraper interface {
	Scrape(ctx context.Context, platform, url string) (*course.Record, error)
}

// Server handles scrape requests.
type Server struct {
	scraper  CourseScraper
	validate *validator.Validate
	timeout  time.Duration
	mux      *http.ServeMux
}

// Option configures the server.
type Option func(*Server)

// WithTimeout bounds the handling of one scrape request.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// New creates the HTTP server around a scraper.
func New(scraper CourseScraper, opts ...Option) *Server {
	s := &Server{
		scraper:  scraper,
		validate: validator.New(),
		timeout:  2 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("POST /api/scrape/{platform}", s.handleScrape)
	s.mux.HandleFunc("GET /api/platforms", s.handlePlatforms)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe runs the server until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

type scrapeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	platform := r.PathValue("platform")

	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON with a url field")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "URL parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	rec, err := s.scraper.Scrape(ctx, platform, req.URL)
	if err != nil {
		status, msg := mapError(err)
		logger.Warn("scrape failed",
			"platform", platform, "url", req.URL, "status", status, "error", err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handlePlatforms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"platforms": adapter.Platforms(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// mapError translates the scrape error taxonomy to HTTP statuses.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, adapter.ErrUnknownPlatform):
		return http.StatusNotFound, "unknown platform"
	case errors.Is(err, adapter.ErrCourseNotFound):
		return http.StatusNotFound, "course data not found"
	case errors.Is(err, adapter.ErrInvalidURL):
		return http.StatusBadRequest, "invalid course url"
	case errors.Is(err, adapter.ErrUnsupportedCourse):
		return http.StatusUnprocessableEntity, "course page is not extractable"
	case errors.Is(err, browser.ErrNavigation):
		return http.StatusBadGateway, "course page could not be loaded"
	default:
		return http.StatusInternalServerError, "failed to scrape course data"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encoding response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
