package models

import "time"

// MangaListEntry is one item on a catalog listing or search results page.
type MangaListEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Type     string `json:"type"`
}

// PaginationInfo describes the pagination controls of a listing page.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	Pages       []int `json:"pages"`
}

// MangaLanguage is one entry of a detail page's language dropdown.
type MangaLanguage struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// MangaRecommendation is one item of a detail page's sidebar.
type MangaRecommendation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Chapter  string `json:"chapter"`
	Vol      string `json:"vol"`
}

// MangaDetail is the parsed detail page of a single manga. Chapters are not
// included; they are fetched lazily per selected language.
type MangaDetail struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Status          string                `json:"status"`
	Author          string                `json:"author"`
	ImageURL        string                `json:"imageUrl"`
	Description     string                `json:"description"`
	Genres          []string              `json:"genres"`
	Languages       []MangaLanguage       `json:"languages"`
	Recommendations []MangaRecommendation `json:"recommendations"`
}

// MangaChapter is one chapter row for a selected language.
type MangaChapter struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	DateUpload time.Time `json:"dateUpload"`
	Scanlator  string    `json:"scanlator"`
}
