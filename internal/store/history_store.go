package store

import (
	"errors"
	"time"

	"github.com/arjunrn/binge-go/internal/models"
)

var ErrEntryNotFound = errors.New("history entry not found")

// UpsertHistory records playback progress. One row is kept per
// (media, season, episode); replaying updates progress and timestamp in
// place.
func (s *Store) UpsertHistory(entry *models.HistoryEntry) (*models.HistoryEntry, error) {
	entry.WatchedAt = time.Now()

	res, err := s.db.Exec(`
		UPDATE history
		SET title = ?, poster_url = ?, progress_seconds = ?, duration_seconds = ?, watched_at = ?
		WHERE media_id = ? AND media_type = ? AND season = ? AND episode = ?`,
		entry.Title, entry.PosterURL, entry.ProgressSeconds, entry.DurationSeconds, entry.WatchedAt,
		entry.MediaID, entry.MediaType, entry.Season, entry.Episode,
	)
	if err != nil {
		return nil, err
	}
	if affected, _ := res.RowsAffected(); affected > 0 {
		row := s.db.QueryRow(
			"SELECT id FROM history WHERE media_id = ? AND media_type = ? AND season = ? AND episode = ?",
			entry.MediaID, entry.MediaType, entry.Season, entry.Episode,
		)
		if err := row.Scan(&entry.ID); err != nil {
			return nil, err
		}
		return entry, nil
	}

	ins, err := s.db.Exec(`
		INSERT INTO history (media_id, media_type, title, poster_url, season, episode, progress_seconds, duration_seconds, watched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.MediaID, entry.MediaType, entry.Title, entry.PosterURL,
		entry.Season, entry.Episode, entry.ProgressSeconds, entry.DurationSeconds, entry.WatchedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.ID, _ = ins.LastInsertId()
	return entry, nil
}

// ListHistory returns history entries, most recently watched first.
func (s *Store) ListHistory(limit int) ([]*models.HistoryEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(`
		SELECT id, media_id, media_type, title, poster_url, season, episode, progress_seconds, duration_seconds, watched_at
		FROM history ORDER BY watched_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*models.HistoryEntry, 0)
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.MediaID, &e.MediaType, &e.Title, &e.PosterURL,
			&e.Season, &e.Episode, &e.ProgressSeconds, &e.DurationSeconds, &e.WatchedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// DeleteHistoryEntry removes one entry by ID.
func (s *Store) DeleteHistoryEntry(id int64) error {
	res, err := s.db.Exec("DELETE FROM history WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// PruneHistory deletes entries last watched before the cutoff and returns
// how many rows were removed. Used by the scheduled retention job.
func (s *Store) PruneHistory(olderThan time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM history WHERE watched_at < ?", olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
