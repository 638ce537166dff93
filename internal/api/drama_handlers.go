// Handler for the drama stream resolution endpoint.

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/arjunrn/binge-go/internal/models"
	"github.com/arjunrn/binge-go/internal/scraper/drama"
)

// Successful resolutions are cached long at the edge (the third-party embeds
// change rarely); failures must never be cached.
const (
	streamCacheControl = "public, s-maxage=21600, stale-while-revalidate=59"
	noStore            = "no-store"
)

type dramaStreamResponse struct {
	Success bool                            `json:"success"`
	Data    map[string]*models.ServerRecord `json:"data,omitempty"`
	Error   string                          `json:"error,omitempty"`
}

func (s *Server) handleDramaStream(w http.ResponseWriter, r *http.Request) {
	episodeID := r.URL.Query().Get("episodeId")
	if episodeID == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing required query parameter: episodeId")
		return
	}

	results, err := s.drama.ResolveEpisode(episodeID)
	if err != nil {
		w.Header().Set("Cache-Control", noStore)
		if errors.Is(err, drama.ErrNoServers) {
			RespondWithJSON(w, http.StatusBadRequest, dramaStreamResponse{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		RespondWithJSON(w, http.StatusInternalServerError, dramaStreamResponse{
			Success: false,
			Error:   fmt.Sprintf("Error processing episode ID: %v", err),
		})
		return
	}

	w.Header().Set("Cache-Control", streamCacheControl)
	RespondWithJSON(w, http.StatusOK, dramaStreamResponse{
		Success: true,
		Data:    results,
	})
}
