package manga

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/arjunrn/binge-go/internal/models"
)

// ErrMangaNotFound is returned when a detail page carries no manga name,
// which means the page did not load a real title.
var ErrMangaNotFound = errors.New("could not load this manga")

// chapterCountRe reads the count out of a language option's "(N Chapters)"
// suffix.
var chapterCountRe = regexp.MustCompile(`\((\d+)\s+Chapters?\)`)

// Detail fetches and parses a single manga's detail page. Every field except
// the name degrades to its zero value when the selector matches nothing.
func (s *Scraper) Detail(mangaID string) (*models.MangaDetail, error) {
	doc, err := s.fetchDocument(fmt.Sprintf("%s/manga/%s", s.baseURL, mangaID))
	if err != nil {
		return nil, fmt.Errorf("fetching manga page: %w", err)
	}

	name := strings.TrimSpace(doc.Find(".detail h1.name").First().Text())
	if name == "" {
		return nil, ErrMangaNotFound
	}

	detail := &models.MangaDetail{
		ID:          mangaID,
		Name:        name,
		Status:      strings.TrimSpace(doc.Find(".detail .status span").First().Text()),
		Author:      strings.TrimSpace(doc.Find(".detail .author a").First().Text()),
		ImageURL:    imageSrc(doc.Find(".cover img").First()),
		Description: strings.TrimSpace(doc.Find(".summary .description").First().Text()),
	}

	doc.Find(".genres a").Each(func(i int, sel *goquery.Selection) {
		if genre := strings.TrimSpace(sel.Text()); genre != "" {
			detail.Genres = append(detail.Genres, genre)
		}
	})

	detail.Languages = parseLanguages(doc)
	detail.Recommendations = parseRecommendations(doc)
	return detail, nil
}

// parseLanguages reads the language dropdown. Option text looks like
// "English (12 Chapters)".
func parseLanguages(doc *goquery.Document) []models.MangaLanguage {
	var langs []models.MangaLanguage
	doc.Find("select.lang-dropdown option").Each(func(i int, sel *goquery.Selection) {
		code, _ := sel.Attr("value")
		if code == "" {
			return
		}
		text := strings.TrimSpace(sel.Text())
		lang := models.MangaLanguage{Code: code, Title: text}
		if m := chapterCountRe.FindStringSubmatch(text); m != nil {
			lang.Count, _ = strconv.Atoi(m[1])
			lang.Title = strings.TrimSpace(strings.Replace(text, m[0], "", 1))
		}
		langs = append(langs, lang)
	})
	return langs
}

func parseRecommendations(doc *goquery.Document) []models.MangaRecommendation {
	var recs []models.MangaRecommendation
	doc.Find("aside.recommend .rec-item").Each(func(i int, sel *goquery.Selection) {
		href, _ := sel.Find("a").First().Attr("href")
		recs = append(recs, models.MangaRecommendation{
			ID:       mangaIDFromHref(href),
			Name:     strings.TrimSpace(sel.Find(".title").First().Text()),
			ImageURL: imageSrc(sel.Find("img").First()),
			Chapter:  strings.TrimSpace(sel.Find(".chapter").First().Text()),
			Vol:      strings.TrimSpace(sel.Find(".vol").First().Text()),
		})
	})
	return recs
}
