package manga

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/arjunrn/binge-go/internal/models"
)

type chapterMeta struct {
	scanlator string
	dateText  string
}

// Chapters fetches the chapter list for one language. The list endpoint only
// carries names and links; scanlator group and upload date come from a second
// AJAX call and are joined by chapter URL. Chapters missing from the metadata
// response keep an empty scanlator and an upload date of now.
func (s *Scraper) Chapters(mangaID, lang string) ([]models.MangaChapter, error) {
	listDoc, err := s.fetchDocument(fmt.Sprintf("%s/ajax/manga/%s/chapters?lang=%s", s.baseURL, mangaID, url.QueryEscape(lang)))
	if err != nil {
		return nil, fmt.Errorf("fetching chapter list: %w", err)
	}

	metaDoc, err := s.fetchDocument(fmt.Sprintf("%s/ajax/manga/%s/chapters/meta?lang=%s", s.baseURL, mangaID, url.QueryEscape(lang)))
	if err != nil {
		return nil, fmt.Errorf("fetching chapter metadata: %w", err)
	}
	meta := parseChapterMeta(metaDoc)

	var chapters []models.MangaChapter
	listDoc.Find("ul.chapter-list li a").Each(func(i int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		ch := models.MangaChapter{
			Name: strings.TrimSpace(sel.Text()),
			URL:  href,
		}
		m, ok := meta[href]
		if ok {
			ch.Scanlator = m.scanlator
		}
		ch.DateUpload = parseUploadDate(m.dateText)
		chapters = append(chapters, ch)
	})
	return chapters, nil
}

// parseChapterMeta indexes the metadata rows by their chapter link.
func parseChapterMeta(doc *goquery.Document) map[string]chapterMeta {
	meta := make(map[string]chapterMeta)
	doc.Find("li[data-chapter]").Each(func(i int, sel *goquery.Selection) {
		href, _ := sel.Attr("data-chapter")
		if href == "" {
			return
		}
		meta[href] = chapterMeta{
			scanlator: strings.TrimSpace(sel.Find(".group").First().Text()),
			dateText:  strings.TrimSpace(sel.Find(".date").First().Text()),
		}
	})
	return meta
}
