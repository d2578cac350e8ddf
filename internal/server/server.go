// Package server provides the JSON HTTP API and static pages of the trivia game.
package server

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/demureom-ctrl/Game/internal/proverb"
	"github.com/demureom-ctrl/Game/internal/question"
	"github.com/demureom-ctrl/Game/internal/word"
)

// RouterConfig holds the collaborators the HTTP API is built from.
type RouterConfig struct {
	Questions       question.QuestionRepository
	Proverbs        proverb.ProverbRepository
	Words           word.WordRepository
	StaticDirectory string
	AllowedOrigins  []string
	// Pick returns a random index in [0, n). Defaults to math/rand/v2.
	Pick func(n int) int
}

// NewRouter builds the HTTP handler for the game pages and the JSON API.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(cfg.AllowedOrigins))

	r.Get("/", staticFile(cfg.StaticDirectory, "index.html"))
	r.Get("/admin", staticFile(cfg.StaticDirectory, "admin.html"))

	game := NewGameHandler(cfg.Questions, cfg.Pick)
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", game.Categories)
		r.Post("/start", game.Start)
		r.Mount("/questions", NewQuestionHandler(cfg.Questions).Routes())
		r.Mount("/proverbs", NewProverbHandler(cfg.Proverbs).Routes())
		r.Mount("/words", NewWordHandler(cfg.Words).Routes())
	})
	return r
}

// NewHTTPServer returns a server on the given port that accepts HTTP/1.1 and cleartext HTTP/2.
func NewHTTPServer(port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

func staticFile(dir, name string) http.HandlerFunc {
	path := filepath.Join(dir, name)
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowed[origin] || allowed["*"] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
