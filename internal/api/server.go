// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/arjunrn/binge-go/internal/core"
	"github.com/arjunrn/binge-go/internal/scraper/drama"
	"github.com/arjunrn/binge-go/internal/scraper/manga"
	"github.com/arjunrn/binge-go/internal/store"
)

const serverVersion = "0.3.0"

// Server holds the dependencies for our API.
type Server struct {
	app   *core.App
	store *store.Store
	drama *drama.Scraper
	manga *manga.Scraper

	// Catalog responses are cached here instead of in hidden module-level
	// state; size and TTL come from the config.
	catalogCache *expirable.LRU[string, []byte]
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	cfg := app.Config
	timeout := time.Duration(cfg.Scraper.TimeoutSeconds) * time.Second
	return &Server{
		app:   app,
		store: store.New(app.DB),
		drama: drama.New(cfg.Upstream.Drama.BaseURL, timeout, cfg.Scraper.Blacklist),
		manga: manga.New(cfg.Upstream.Manga.BaseURL, timeout),
		catalogCache: expirable.NewLRU[string, []byte](
			cfg.Cache.Size, nil, time.Duration(cfg.Cache.TTLMinutes)*time.Minute),
	}
}

// Store returns the store instance.
func (s *Server) Store() *store.Store {
	return s.store
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/drama/stream", s.handleDramaStream)

		r.Route("/manga", func(r chi.Router) {
			r.Get("/latest", s.handleMangaLatest)
			r.Get("/search", s.handleMangaSearch)
			r.Get("/{mangaID}", s.handleMangaDetail)
			r.Get("/{mangaID}/chapters", s.handleMangaChapters)
		})

		r.Get("/watchlist", s.handleListWatchlist)
		r.Post("/watchlist", s.handleAddToWatchlist)
		r.Delete("/watchlist/{itemID}", s.handleRemoveFromWatchlist)

		r.Get("/history", s.handleListHistory)
		r.Post("/history", s.handleUpsertHistory)
		r.Delete("/history/{entryID}", s.handleDeleteHistoryEntry)

		// Image proxy (covers/posters gated on a Referer header upstream)
		r.Get("/proxy/image", s.handleProxyImage)

		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			RespondWithJSON(w, http.StatusOK, map[string]string{"version": serverVersion})
		})
	})

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if err := s.app.DB.Ping(); err != nil {
			RespondWithError(w, http.StatusServiceUnavailable, "Database connection failed")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
