// Package preview serves a generated documentation tree over HTTP so the
// Markdown output can be browsed before publishing. Markdown files are
// rendered to HTML on the fly.
package preview

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/waynegramlich/docstrex/internal/htmlconv"
)

// Server serves one documentation root directory.
type Server struct {
	router chi.Router
	root   string
	log    *slog.Logger
}

func NewServer(root string, log *slog.Logger) *Server {
	s := &Server{root: root, log: log}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/*", s.handleFile)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if rel == "" || rel == "." {
		rel = "README.md"
	}
	target := filepath.Join(s.root, filepath.FromSlash(rel))
	if !strings.HasPrefix(filepath.Clean(target), filepath.Clean(s.root)) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	info, err := os.Stat(target)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if info.IsDir() {
		target = filepath.Join(target, "README.md")
		if _, err := os.Stat(target); err != nil {
			http.NotFound(w, r)
			return
		}
	}
	if strings.HasSuffix(target, ".md") {
		s.serveMarkdown(w, r, target)
		return
	}
	http.ServeFile(w, r, target)
}

func (s *Server) serveMarkdown(w http.ResponseWriter, r *http.Request, target string) {
	src, err := os.ReadFile(target)
	if err != nil {
		http.Error(w, "read error", http.StatusInternalServerError)
		return
	}
	html, err := htmlconv.Render(src)
	if err != nil {
		s.log.Error("markdown render failed", "path", target, "error", err)
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html><head><title>%s</title></head><body>\n", filepath.Base(target))
	w.Write(html)
	w.Write([]byte("</body></html>\n"))
}

// ListenAndServe blocks serving the documentation root on addr.
func ListenAndServe(addr, root string, log *slog.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      NewServer(root, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	log.Info("serving documentation", "addr", addr, "root", root)
	return srv.ListenAndServe()
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: 200}
			next.ServeHTTP(sw, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
