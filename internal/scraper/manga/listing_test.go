package manga

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const listingFixture = `
<html><body>
<div class="book-item">
  <a class="title" href="/manga/solo-leveling">Solo Leveling</a>
  <img data-src="https://img.test/solo-leveling.jpg" />
  <span class="type">Manhwa</span>
</div>
<div class="book-item">
  <a class="title" href="/manga/one-piece">One Piece</a>
  <img src="https://img.test/one-piece.jpg" />
  <span class="type">Manga</span>
</div>
<ul class="pagination">
  <li><a href="/browse?page=1">1</a></li>
  <li><a href="/browse?page=2">2</a></li>
  <li class="active"><span>3</span></li>
  <li><span>...</span></li>
  <li><a href="/browse?page=10">10</a></li>
</ul>
</body></html>
`

func newListingServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/browse", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, listingFixture)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "solo" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, listingFixture)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLatest(t *testing.T) {
	srv := newListingServer(t)
	s := New(srv.URL, 10*time.Second)

	entries, pagination, err := s.Latest(3)
	if err != nil {
		t.Fatalf("Latest() failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	first := entries[0]
	if first.ID != "solo-leveling" {
		t.Errorf("Expected id 'solo-leveling', got '%s'", first.ID)
	}
	if first.Name != "Solo Leveling" {
		t.Errorf("Expected name 'Solo Leveling', got '%s'", first.Name)
	}
	if first.ImageURL != "https://img.test/solo-leveling.jpg" {
		t.Errorf("Unexpected image url '%s'", first.ImageURL)
	}
	if first.Type != "Manhwa" {
		t.Errorf("Expected type 'Manhwa', got '%s'", first.Type)
	}
	if entries[1].ImageURL != "https://img.test/one-piece.jpg" {
		t.Errorf("Expected src fallback for second entry, got '%s'", entries[1].ImageURL)
	}

	if pagination.CurrentPage != 3 {
		t.Errorf("Expected current page 3, got %d", pagination.CurrentPage)
	}
	if pagination.TotalPages != 10 {
		t.Errorf("Expected 10 total pages, got %d", pagination.TotalPages)
	}
	if !pagination.HasNextPage {
		t.Error("Expected HasNextPage to be true")
	}
	want := []int{1, 2, 3, 10}
	if len(pagination.Pages) != len(want) {
		t.Fatalf("Expected pages %v, got %v", want, pagination.Pages)
	}
	for i, n := range want {
		if pagination.Pages[i] != n {
			t.Fatalf("Expected pages %v, got %v", want, pagination.Pages)
		}
	}
}

func TestSearch(t *testing.T) {
	srv := newListingServer(t)
	s := New(srv.URL, 10*time.Second)

	entries, _, err := s.Search("solo", 3)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
}

func TestPaginationLastPageActive(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/browse", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `
		<ul class="pagination">
		  <li><a href="/browse?page=1">1</a></li>
		  <li class="active"><span>2</span></li>
		</ul>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := New(srv.URL, 10*time.Second)
	_, pagination, err := s.Latest(2)
	if err != nil {
		t.Fatalf("Latest() failed: %v", err)
	}
	if pagination.HasNextPage {
		t.Error("Expected HasNextPage to be false on the last page")
	}
	if pagination.CurrentPage != 2 {
		t.Errorf("Expected current page 2, got %d", pagination.CurrentPage)
	}
	if pagination.TotalPages != 1 {
		t.Errorf("Expected total pages 1 (from last anchor), got %d", pagination.TotalPages)
	}
}

func TestListingUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	s := New(srv.URL, 10*time.Second)
	if _, _, err := s.Latest(1); err == nil {
		t.Fatal("Expected an error for a failing upstream")
	}
}
