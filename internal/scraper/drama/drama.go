// Package drama resolves playable stream URLs for drama episodes by
// cascading through the embed "servers" listed on an episode page. Each
// server page ships a packer-obfuscated inline script; deobfuscating it
// exposes the manifest and subtitle URLs.
package drama

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/publicsuffix"
)

const (
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptLanguage = "en-US,en;q=0.9"
)

// Scraper fetches and parses pages from the drama site and its embed hosts.
type Scraper struct {
	client    *http.Client
	baseURL   string
	blacklist map[string]bool
}

// New creates a drama scraper for the given upstream. Blacklisted server
// names are skipped without a network call.
func New(baseURL string, timeout time.Duration, blacklist []string) *Scraper {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	bl := make(map[string]bool, len(blacklist))
	for _, name := range blacklist {
		bl[strings.ToLower(name)] = true
	}
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		blacklist: bl,
	}
}

// fetchDocument GETs a page with browser-like headers and parses it. The
// upstream gates content on the Referer header, so every request carries the
// site's own homepage as referrer.
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

// episodeURL builds the episode page URL with the identifier encoded into
// the path.
func (s *Scraper) episodeURL(episodeID string) string {
	return fmt.Sprintf("%s/videos/%s", s.baseURL, url.PathEscape(episodeID))
}

// normalizeEmbedLink resolves scheme-relative embed links, which the
// upstream uses for most servers.
func normalizeEmbedLink(link string) string {
	if strings.HasPrefix(link, "//") {
		return "https:" + link
	}
	return link
}
