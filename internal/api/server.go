package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/mdpress/internal/config"
	"github.com/dgallion1/mdpress/internal/document"
)

// Builder produces a freshly assembled document on demand.
type Builder interface {
	Build() (*document.Document, error)
}

// Server is the HTTP preview server for mdpress.
type Server struct {
	router  chi.Router
	builder Builder
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the preview server.
func NewServer(builder Builder, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		builder: builder,
		log:     log,
		cfg:     cfg,
	}
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
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey))
		}

		r.Get("/document", s.handleDocument)
		r.Get("/document.html", s.handleDocumentHTML)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
