// Handlers for the watchlist CRUD endpoints.

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arjunrn/binge-go/internal/store"
)

type watchlistPayload struct {
	MediaID   string `json:"media_id"`
	MediaType string `json:"media_type"`
	Title     string `json:"title"`
	PosterURL string `json:"poster_url"`
}

func (s *Server) handleListWatchlist(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListWatchlist()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve watchlist")
		return
	}
	RespondWithJSON(w, http.StatusOK, items)
}

func (s *Server) handleAddToWatchlist(w http.ResponseWriter, r *http.Request) {
	var payload watchlistPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.MediaID == "" || payload.MediaType == "" || payload.Title == "" {
		RespondWithError(w, http.StatusBadRequest, "media_id, media_type and title are required")
		return
	}

	item, err := s.store.AddToWatchlist(payload.MediaID, payload.MediaType, payload.Title, payload.PosterURL)
	if err != nil {
		if errors.Is(err, store.ErrAlreadySaved) {
			RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		RespondWithError(w, http.StatusInternalServerError, "Failed to add to watchlist")
		return
	}
	RespondWithJSON(w, http.StatusCreated, item)
}

func (s *Server) handleRemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid watchlist item ID")
		return
	}

	if err := s.store.RemoveFromWatchlist(id); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		RespondWithError(w, http.StatusInternalServerError, "Failed to remove from watchlist")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
