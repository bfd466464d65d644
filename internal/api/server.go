package api

import (
	"log/slog"
	"net/http"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/config"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/extract"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/genai"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/images"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API for the document generator.
type Server struct {
	router    chi.Router
	generator genai.TextGenerator
	stats     *genai.Stats
	extractor *extract.Extractor
	images    *images.Client
	projects  *store.Store
	log       *slog.Logger
	cfg       config.Config
}

// NewServer wires the handlers. All collaborators are injected; none are
// constructed here.
func NewServer(gen genai.TextGenerator, stats *genai.Stats, ex *extract.Extractor, img *images.Client, projects *store.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		generator: gen,
		stats:     stats,
		extractor: ex,
		images:    img,
		projects:  projects,
		log:       log,
		cfg:       cfg,
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

		r.Post("/api/generate/{documentType}", s.handleGenerate)
		r.Post("/api/export/{format}", s.handleExport)

		r.Post("/api/files/process", s.handleProcessFile)
		r.Post("/api/files/batch", s.handleBatchFiles)

		r.Post("/api/images/search", s.handleImageSearch)
		r.Post("/api/images/random", s.handleRandomImage)

		r.Get("/api/random-topic", s.handleRandomTopic)

		r.Post("/api/projects", s.handleCreateProject)
		r.Get("/api/projects/{userID}", s.handleListProjects)
		r.Delete("/api/projects/{id}", s.handleDeleteProject)

		r.Post("/api/chat", s.handleChat)
		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
