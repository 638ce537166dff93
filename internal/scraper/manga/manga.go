// Package manga scrapes the manga catalog upstream: paginated listing pages,
// detail pages and the per-language AJAX chapter endpoints.
package manga

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/publicsuffix"
)

const (
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptLanguage = "en-US,en;q=0.9"
)

// Scraper fetches and parses pages from the manga site.
type Scraper struct {
	client  *http.Client
	baseURL string
}

func New(baseURL string, timeout time.Duration) *Scraper {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Scraper) fetchDocument(pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Referer", s.baseURL+"/")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

// The upstream renders upload dates like "Jan 03,2024 - 23:12", which no
// standard layout covers, so months are looked up in a fixed table.
var uploadDateRe = regexp.MustCompile(`([A-Za-z]{3})[a-z]*\s+(\d{1,2}),\s*(\d{4})`)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// parseUploadDate converts the upstream's date text to a time. Anything that
// does not match falls back to the current time.
func parseUploadDate(text string) time.Time {
	m := uploadDateRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return time.Now()
	}
	month, ok := months[strings.ToLower(m[1])]
	if !ok {
		return time.Now()
	}
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// imageSrc prefers the lazy-loading attribute the site uses for covers.
func imageSrc(sel *goquery.Selection) string {
	if src, ok := sel.Attr("data-src"); ok && src != "" {
		return src
	}
	src, _ := sel.Attr("src")
	return src
}

// mangaIDFromHref strips the path prefix from a detail-page link. Links may
// be relative or absolute.
func mangaIDFromHref(href string) string {
	href = strings.TrimSpace(href)
	if i := strings.Index(href, "/manga/"); i >= 0 {
		href = href[i+len("/manga/"):]
	}
	return strings.Trim(href, "/")
}
