// Handlers for the watch history endpoints.

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arjunrn/binge-go/internal/models"
	"github.com/arjunrn/binge-go/internal/store"
)

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := s.store.ListHistory(limit)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve history")
		return
	}
	RespondWithJSON(w, http.StatusOK, entries)
}

func (s *Server) handleUpsertHistory(w http.ResponseWriter, r *http.Request) {
	var entry models.HistoryEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if entry.MediaID == "" || entry.MediaType == "" {
		RespondWithError(w, http.StatusBadRequest, "media_id and media_type are required")
		return
	}

	saved, err := s.store.UpsertHistory(&entry)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to record history")
		return
	}
	RespondWithJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "entryID"), 10, 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid history entry ID")
		return
	}

	if err := s.store.DeleteHistoryEntry(id); err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		RespondWithError(w, http.StatusInternalServerError, "Failed to delete history entry")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
