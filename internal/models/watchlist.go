package models

import "time"

// WatchlistItem is a saved title. The service is single-user, so items are
// not tied to an account.
type WatchlistItem struct {
	ID        int64     `json:"id"`
	MediaID   string    `json:"media_id"`
	MediaType string    `json:"media_type"` // "movie", "tv", "anime", "drama", "manga"
	Title     string    `json:"title"`
	PosterURL string    `json:"poster_url"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry records playback progress for one episode or chapter.
type HistoryEntry struct {
	ID              int64     `json:"id"`
	MediaID         string    `json:"media_id"`
	MediaType       string    `json:"media_type"`
	Title           string    `json:"title"`
	PosterURL       string    `json:"poster_url"`
	Season          int       `json:"season"`
	Episode         int       `json:"episode"`
	ProgressSeconds int       `json:"progress_seconds"`
	DurationSeconds int       `json:"duration_seconds"`
	WatchedAt       time.Time `json:"watched_at"`
}
