package store

import (
	"errors"
	"strings"
	"time"

	"github.com/arjunrn/binge-go/internal/models"
)

var (
	ErrItemNotFound = errors.New("watchlist item not found")
	ErrAlreadySaved = errors.New("title is already on the watchlist")
)

// AddToWatchlist saves a title. Saving the same title twice is an error so
// the handler can answer 409.
func (s *Store) AddToWatchlist(mediaID, mediaType, title, posterURL string) (*models.WatchlistItem, error) {
	now := time.Now()
	res, err := s.db.Exec(
		"INSERT INTO watchlist (media_id, media_type, title, poster_url, created_at) VALUES (?, ?, ?, ?, ?)",
		mediaID, mediaType, title, posterURL, now,
	)
	if err != nil {
		// The sqlite driver exposes no typed error for this; match the text.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrAlreadySaved
		}
		return nil, err
	}
	id, _ := res.LastInsertId()
	return &models.WatchlistItem{
		ID:        id,
		MediaID:   mediaID,
		MediaType: mediaType,
		Title:     title,
		PosterURL: posterURL,
		CreatedAt: now,
	}, nil
}

// ListWatchlist returns all saved titles, newest first.
func (s *Store) ListWatchlist() ([]*models.WatchlistItem, error) {
	rows, err := s.db.Query(
		"SELECT id, media_id, media_type, title, poster_url, created_at FROM watchlist ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.WatchlistItem, 0)
	for rows.Next() {
		var item models.WatchlistItem
		if err := rows.Scan(&item.ID, &item.MediaID, &item.MediaType, &item.Title, &item.PosterURL, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// RemoveFromWatchlist deletes one saved title by its row ID.
func (s *Store) RemoveFromWatchlist(id int64) error {
	res, err := s.db.Exec("DELETE FROM watchlist WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}
