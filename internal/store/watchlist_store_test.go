package store_test

import (
	"errors"
	"testing"

	"github.com/arjunrn/binge-go/internal/store"
	"github.com/arjunrn/binge-go/internal/testutil"
)

func TestWatchlist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := store.New(db)

	t.Run("add and list", func(t *testing.T) {
		item, err := s.AddToWatchlist("tt0944947", "tv", "Game of Thrones", "https://img.test/got.jpg")
		if err != nil {
			t.Fatalf("AddToWatchlist() failed: %v", err)
		}
		if item.ID == 0 {
			t.Error("Expected a non-zero ID")
		}

		items, err := s.ListWatchlist()
		if err != nil {
			t.Fatalf("ListWatchlist() failed: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(items))
		}
		if items[0].Title != "Game of Thrones" {
			t.Errorf("Unexpected title '%s'", items[0].Title)
		}
	})

	t.Run("duplicate add is rejected", func(t *testing.T) {
		_, err := s.AddToWatchlist("tt0944947", "tv", "Game of Thrones", "")
		if !errors.Is(err, store.ErrAlreadySaved) {
			t.Fatalf("Expected ErrAlreadySaved, got %v", err)
		}
	})

	t.Run("same id under different type is allowed", func(t *testing.T) {
		if _, err := s.AddToWatchlist("tt0944947", "manga", "Game of Thrones (comic)", ""); err != nil {
			t.Fatalf("AddToWatchlist() failed: %v", err)
		}
	})

	t.Run("remove", func(t *testing.T) {
		items, _ := s.ListWatchlist()
		if err := s.RemoveFromWatchlist(items[0].ID); err != nil {
			t.Fatalf("RemoveFromWatchlist() failed: %v", err)
		}
		if err := s.RemoveFromWatchlist(99999); !errors.Is(err, store.ErrItemNotFound) {
			t.Fatalf("Expected ErrItemNotFound, got %v", err)
		}
	})
}
