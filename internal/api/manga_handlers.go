// Handlers for the manga catalog endpoints. Listing and search responses
// are served from the catalog cache when possible.

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arjunrn/binge-go/internal/models"
	"github.com/arjunrn/binge-go/internal/scraper/manga"
)

type mangaListingResponse struct {
	Items      []models.MangaListEntry `json:"items"`
	Pagination models.PaginationInfo   `json:"pagination"`
}

func (s *Server) handleMangaLatest(w http.ResponseWriter, r *http.Request) {
	if s.serveFromCache(w, r) {
		return
	}
	entries, pagination, err := s.manga.Latest(pageParam(r))
	if err != nil {
		RespondWithError(w, http.StatusBadGateway, "Failed to fetch manga listing")
		return
	}
	s.respondAndCache(w, r, mangaListingResponse{Items: entries, Pagination: pagination})
}

func (s *Server) handleMangaSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing required query parameter: q")
		return
	}
	if s.serveFromCache(w, r) {
		return
	}
	entries, pagination, err := s.manga.Search(query, pageParam(r))
	if err != nil {
		RespondWithError(w, http.StatusBadGateway, "Failed to search manga")
		return
	}
	s.respondAndCache(w, r, mangaListingResponse{Items: entries, Pagination: pagination})
}

func (s *Server) handleMangaDetail(w http.ResponseWriter, r *http.Request) {
	mangaID := chi.URLParam(r, "mangaID")
	if s.serveFromCache(w, r) {
		return
	}
	detail, err := s.manga.Detail(mangaID)
	if err != nil {
		if errors.Is(err, manga.ErrMangaNotFound) {
			RespondWithError(w, http.StatusNotFound, manga.ErrMangaNotFound.Error())
			return
		}
		RespondWithError(w, http.StatusBadGateway, "Failed to fetch manga detail")
		return
	}
	s.respondAndCache(w, r, detail)
}

func (s *Server) handleMangaChapters(w http.ResponseWriter, r *http.Request) {
	mangaID := chi.URLParam(r, "mangaID")
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = "en"
	}
	if s.serveFromCache(w, r) {
		return
	}
	chapters, err := s.manga.Chapters(mangaID, lang)
	if err != nil {
		RespondWithError(w, http.StatusBadGateway, "Failed to fetch chapters")
		return
	}
	s.respondAndCache(w, r, chapters)
}

// serveFromCache writes a previously cached response body for this URI, if
// one exists.
func (s *Server) serveFromCache(w http.ResponseWriter, r *http.Request) bool {
	body, ok := s.catalogCache.Get(r.URL.RequestURI())
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
	return true
}

// respondAndCache stores the marshaled payload under the request URI before
// writing it out.
func (s *Server) respondAndCache(w http.ResponseWriter, r *http.Request, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to marshal response")
		return
	}
	s.catalogCache.Add(r.URL.RequestURI(), body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
