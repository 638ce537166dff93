package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/arjunrn/binge-go/internal/api"
	"github.com/arjunrn/binge-go/internal/models"
	"github.com/arjunrn/binge-go/internal/testutil"
)

const mangaListingPage = `<html><body>
<div class="book-item">
  <a class="title" href="/manga/solo-leveling">Solo Leveling</a>
  <img data-src="https://img.test/covers/solo.jpg">
  <span class="type">Manhwa</span>
</div>
<div class="book-item">
  <a class="title" href="/manga/one-piece">One Piece</a>
  <img src="https://img.test/covers/op.jpg">
  <span class="type">Manga</span>
</div>
<ul class="pagination">
  <li class="active"><a href="/browse?page=1">1</a></li>
  <li><a href="/browse?page=2">2</a></li>
  <li><a href="/browse?page=2">Next</a></li>
</ul>
</body></html>`

type mangaListingResponse struct {
	Items      []models.MangaListEntry `json:"items"`
	Pagination models.PaginationInfo   `json:"pagination"`
}

func TestHandleMangaLatest(t *testing.T) {
	var browseHits int64
	mux := http.NewServeMux()
	mux.HandleFunc("/browse", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&browseHits, 1)
		fmt.Fprint(w, mangaListingPage)
	})
	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	app := testutil.SetupTestApp(t)
	app.Config.Upstream.Manga.BaseURL = upstream.URL
	router := api.NewServer(app).Router()

	fetch := func() mangaListingResponse {
		t.Helper()
		req, _ := http.NewRequest("GET", "/api/manga/latest?page=1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
		}
		var body mangaListingResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		return body
	}

	body := fetch()
	if len(body.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(body.Items))
	}
	if body.Items[0].ID != "solo-leveling" || body.Items[0].Name != "Solo Leveling" {
		t.Errorf("Unexpected first entry: %+v", body.Items[0])
	}
	if body.Pagination.CurrentPage != 1 || !body.Pagination.HasNextPage {
		t.Errorf("Unexpected pagination: %+v", body.Pagination)
	}

	// The second identical request must be served from the catalog cache.
	body = fetch()
	if len(body.Items) != 2 {
		t.Fatalf("Cached response lost its items: %+v", body)
	}
	if hits := atomic.LoadInt64(&browseHits); hits != 1 {
		t.Errorf("Expected exactly 1 upstream fetch, got %d", hits)
	}
}

func TestHandleMangaSearchRequiresQuery(t *testing.T) {
	app := testutil.SetupTestApp(t)
	router := api.NewServer(app).Router()

	req, _ := http.NewRequest("GET", "/api/manga/search", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusBadRequest)
	}
}

func TestHandleMangaDetailNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div class="detail"></div></body></html>`)
	}))
	defer upstream.Close()

	app := testutil.SetupTestApp(t)
	app.Config.Upstream.Manga.BaseURL = upstream.URL
	router := api.NewServer(app).Router()

	req, _ := http.NewRequest("GET", "/api/manga/missing-title", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusNotFound)
	}
}
