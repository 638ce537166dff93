// JSON response helpers shared by all handlers.

package api

import (
	"encoding/json"
	"net/http"
)

// RespondWithJSON marshals the payload and writes it with the given status.
// Handlers that need extra headers (Cache-Control on the stream endpoint)
// set them before calling.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Failed to marshal response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithError writes an `{"error": message}` body with the given status.
func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}
