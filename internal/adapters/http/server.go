package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/agroclima/agroclima-api/internal/adapters/session"
	"github.com/agroclima/agroclima-api/internal/app/advisor"
	"github.com/agroclima/agroclima-api/internal/app/chat"
)

type Server struct {
	chat     *chat.Service
	advisor  *advisor.Service
	sessions *session.Manager
}

// NewServer builds the HTTP handler: chi router, request-id and logging
// middleware, CORS restricted to the configured frontend origins.
func NewServer(chatSvc *chat.Service, advisorSvc *advisor.Service, sessions *session.Manager, allowedOrigins []string) http.Handler {
	s := &Server{
		chat:     chatSvc,
		advisor:  advisorSvc,
		sessions: sessions,
	}

	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(withLogging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealthz)
	r.Post("/api/chat", s.handleChat)
	r.Post("/api/ai-recommendation", s.handleRecommendation)

	return r
}
