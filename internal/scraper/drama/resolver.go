package drama

import (
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/arjunrn/binge-go/internal/extract"
	"github.com/arjunrn/binge-go/internal/models"
)

// ErrNoServers is returned when the episode page lists no servers at all.
// Its text is part of the API contract.
var ErrNoServers = errors.New("No servers found in episode HTML.")

// messages recorded per server; they surface verbatim in the response.
const (
	errScriptNotFound = "Obfuscated script not found in server HTML."
	errParseFailed    = "Failed to parse obfuscated code."
)

// ResolveEpisode walks the episode's server list and returns a map of server
// name to extraction outcome. Servers are processed one at a time; a failure
// on one server is recorded in its record and never aborts the others. If no
// top-level server yields a manifest and a "standard" server exists, its
// sub-server list is expanded once and the results merged flat into the same
// map.
func (s *Scraper) ResolveEpisode(episodeID string) (map[string]*models.ServerRecord, error) {
	doc, err := s.fetchDocument(s.episodeURL(episodeID))
	if err != nil {
		return nil, fmt.Errorf("fetching episode page: %w", err)
	}

	servers := parseServerList(doc)
	if len(servers) == 0 {
		return nil, ErrNoServers
	}

	results := make(map[string]*models.ServerRecord, len(servers))
	for _, server := range servers {
		results[server.Name] = server
		if s.blacklist[server.Name] {
			server.Skipped = true
			continue
		}
		s.processServer(server)
	}

	if standard, ok := results["standard"]; ok && standard.EmbedLink != "" && !anyManifestFound(results) {
		s.expandStandardServer(standard, results)
	}

	return results, nil
}

// expandStandardServer fetches the "standard" server's own page and runs its
// sub-servers through the same pipeline. Sub-server records are keyed by
// provider name at the top level; the output map is flat.
func (s *Scraper) expandStandardServer(standard *models.ServerRecord, results map[string]*models.ServerRecord) {
	doc, err := s.fetchDocument(normalizeEmbedLink(standard.EmbedLink))
	if err != nil {
		msg := fmt.Sprintf("Error processing server: %v", err)
		standard.Error = &msg
		return
	}

	for _, sub := range parseSubServerList(doc) {
		results[sub.Name] = sub
		if s.blacklist[sub.Name] {
			sub.Skipped = true
			continue
		}
		if sub.EmbedLink == "" {
			continue
		}
		s.processServer(sub)
	}
}

// processServer fetches one embed page, locates its obfuscated script,
// deobfuscates it and classifies the URLs it contains. Every failure mode is
// recorded on the record instead of returned.
func (s *Scraper) processServer(server *models.ServerRecord) {
	doc, err := s.fetchDocument(normalizeEmbedLink(server.EmbedLink))
	if err != nil {
		msg := fmt.Sprintf("Error processing server: %v", err)
		server.Error = &msg
		return
	}

	script := findPackedScript(doc)
	if script == "" {
		msg := errScriptNotFound
		server.Error = &msg
		return
	}

	params, err := extract.ParsePacked(script)
	if err != nil {
		msg := errParseFailed
		server.Error = &msg
		return
	}

	urls := extract.FindMediaURLs(params.Unpack())
	server.StreamURL = urls.Stream
	server.SubtitleURL = urls.Subtitle
	server.IsManifestFound = urls.ManifestFound
}

// findPackedScript returns the text of the first inline script carrying the
// packer signature, or "" if none exists.
func findPackedScript(doc *goquery.Document) string {
	var script string
	doc.Find("script").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if text := sel.Text(); extract.HasPackerSignature(text) {
			script = text
			return false
		}
		return true
	})
	return script
}

func anyManifestFound(results map[string]*models.ServerRecord) bool {
	for _, r := range results {
		if r.IsManifestFound {
			return true
		}
	}
	return false
}
