// handleProxyImage proxies cover/poster requests with the headers the
// upstream CDNs require. Both catalog sites refuse image requests without a
// Referer from their own origin, so the browser cannot load them directly.

package api

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

func (s *Server) handleProxyImage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	resourceURL := query.Get("url")
	if resourceURL == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing 'url' parameter")
		return
	}

	parsedURL, err := url.Parse(resourceURL)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid URL")
		return
	}
	// Security: Only allow http/https URLs
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		RespondWithError(w, http.StatusBadRequest, "Only http and https URLs are allowed")
		return
	}

	client := &http.Client{Timeout: 30 * time.Second}

	req, err := http.NewRequest("GET", resourceURL, nil)
	if err != nil {
		log.Printf("Error creating proxy request: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to create request")
		return
	}

	referer := query.Get("referer")
	if referer == "" {
		referer = s.app.Config.Upstream.Manga.BaseURL + "/"
	}
	req.Header.Set("Referer", referer)
	if userAgent := query.Get("user-agent"); userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Error fetching proxied image: %v", err)
		RespondWithError(w, http.StatusBadGateway, "Failed to fetch resource")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Proxied image returned status %d for URL: %s", resp.StatusCode, resourceURL)
		RespondWithError(w, http.StatusBadGateway, "Resource server returned error")
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	// Covers can be cached long; they are content-addressed upstream.
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("Error copying proxied image data: %v", err)
		// Response already started, can't send error
		return
	}
}
