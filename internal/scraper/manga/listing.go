package manga

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/arjunrn/binge-go/internal/models"
)

// Latest returns one page of the "latest updates" catalog listing.
func (s *Scraper) Latest(page int) ([]models.MangaListEntry, models.PaginationInfo, error) {
	return s.listing(fmt.Sprintf("%s/browse?page=%d", s.baseURL, page))
}

// Search returns one page of search results for the given query.
func (s *Scraper) Search(query string, page int) ([]models.MangaListEntry, models.PaginationInfo, error) {
	return s.listing(fmt.Sprintf("%s/search?q=%s&page=%d", s.baseURL, url.QueryEscape(query), page))
}

func (s *Scraper) listing(pageURL string) ([]models.MangaListEntry, models.PaginationInfo, error) {
	doc, err := s.fetchDocument(pageURL)
	if err != nil {
		return nil, models.PaginationInfo{}, fmt.Errorf("fetching listing page: %w", err)
	}
	return parseListing(doc), parsePagination(doc), nil
}

// parseListing extracts one entry per book container. A container missing a
// field simply yields an empty string for it.
func parseListing(doc *goquery.Document) []models.MangaListEntry {
	var entries []models.MangaListEntry
	doc.Find("div.book-item").Each(func(i int, sel *goquery.Selection) {
		link := sel.Find("a.title").First()
		href, _ := link.Attr("href")
		entries = append(entries, models.MangaListEntry{
			ID:       mangaIDFromHref(href),
			Name:     strings.TrimSpace(link.Text()),
			ImageURL: imageSrc(sel.Find("img").First()),
			Type:     strings.TrimSpace(sel.Find("span.type").First().Text()),
		})
	})
	return entries
}

// parsePagination derives the pagination state from the page-number list:
// the active element's text is the current page, every numeric link text is
// collected, and the total is the page= parameter of the last anchor.
func parsePagination(doc *goquery.Document) models.PaginationInfo {
	var info models.PaginationInfo

	items := doc.Find("ul.pagination li")
	items.Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		n, err := strconv.Atoi(text)
		if err != nil {
			return // ellipsis, "Next" etc.
		}
		info.Pages = append(info.Pages, n)
		if sel.HasClass("active") {
			info.CurrentPage = n
			// A following pagination item means there is a next page.
			info.HasNextPage = i < items.Length()-1
		}
	})

	if href, ok := doc.Find("ul.pagination li a").Last().Attr("href"); ok {
		info.TotalPages = pageParam(href)
	}
	return info
}

// pageParam parses the page=<N> query parameter out of a pagination href.
func pageParam(href string) int {
	u, err := url.Parse(href)
	if err != nil {
		return 0
	}
	n, _ := strconv.Atoi(u.Query().Get("page"))
	return n
}
