package drama

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/arjunrn/binge-go/internal/models"
)

// The two functions below are the only place that knows what the upstream's
// markup looks like. When the site changes its HTML, only these adapters
// need updating; the resolver itself is markup-agnostic.

// parseServerList reads the top-level server blocks of an episode page:
// <div class="Standard serverslist active" data-server="//embed...">.
// The server name is the lower-cased first class token.
func parseServerList(doc *goquery.Document) []*models.ServerRecord {
	var servers []*models.ServerRecord
	doc.Find("div.serverslist[data-server]").Each(func(i int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		fields := strings.Fields(class)
		if len(fields) == 0 {
			return
		}
		link, _ := sel.Attr("data-server")
		servers = append(servers, &models.ServerRecord{
			Name:      strings.ToLower(fields[0]),
			EmbedLink: link,
		})
	})
	return servers
}

// parseSubServerList reads the expanded sub-server list exposed on the
// "standard" server's own page:
// <li class="linkserver" data-provider="Vidmoly" data-video="//...">.
func parseSubServerList(doc *goquery.Document) []*models.ServerRecord {
	var servers []*models.ServerRecord
	doc.Find("#list-server-more .list-server-items li.linkserver").Each(func(i int, sel *goquery.Selection) {
		provider, _ := sel.Attr("data-provider")
		if provider == "" {
			return
		}
		link, _ := sel.Attr("data-video")
		servers = append(servers, &models.ServerRecord{
			Name:      strings.ToLower(provider),
			EmbedLink: link,
		})
	})
	return servers
}
