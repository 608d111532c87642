// Package server exposes the tutoring pipeline over HTTP for web
// front-ends. Sessions live in memory for their lifetime; only the
// final session record is persisted.
package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ameya/eduplan/internal/pipeline"
	"github.com/ameya/eduplan/internal/store"
)

// Server routes HTTP requests to a pipeline service.
type Server struct {
	svc    *pipeline.Service
	events store.EventRepo

	mu       sync.Mutex
	sessions map[string]*sessionState
}

// sessionState is everything the server remembers about one live
// session between requests. mu serializes all handler access to one
// session, including across the pipeline run: a session is owned by
// one request at a time.
type sessionState struct {
	mu       sync.Mutex
	sess     *pipeline.Session
	outcome  *pipeline.Outcome
	accuracy float64
	graded   bool
}

// New creates a server around the given service. events may be nil; it
// only backs the session-history endpoint.
func New(svc *pipeline.Service, events store.EventRepo) *Server {
	return &Server{
		svc:      svc,
		events:   events,
		sessions: make(map[string]*sessionState),
	}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", s.handleStartSession)
		r.Get("/recent", s.handleRecentSessions)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Post("/run", s.handleRunPipeline)
			r.Post("/quiz", s.handleSubmitQuiz)
			r.Post("/finalize", s.handleFinalize)
		})
	})

	return r
}

// lookup fetches the live state for a session ID.
func (s *Server) lookup(id string) (*sessionState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[id]
	return state, ok
}

func (s *Server) put(state *sessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.sess.ID] = state
}

func (s *Server) evict(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
