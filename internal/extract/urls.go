package extract

import (
	"regexp"
	"strings"
)

// urlRe matches http(s) URL-shaped substrings. A match ends at whitespace or
// at a quote character, which is where embed scripts terminate their URLs.
var urlRe = regexp.MustCompile(`https?://[^\s'"` + "`" + `\\]+`)

// MediaURLs is the syntactic classification of the URLs found in a
// deobfuscated script. No attempt is made to verify reachability.
type MediaURLs struct {
	Stream        *string
	Subtitle      *string
	ManifestFound bool
}

// FindMediaURLs scans arbitrary text for URLs and picks the first streaming
// manifest (.m3u8) and the first subtitle track (.vtt), in order of
// appearance.
func FindMediaURLs(text string) MediaURLs {
	var out MediaURLs
	for _, match := range urlRe.FindAllString(text, -1) {
		u := match
		switch {
		case out.Stream == nil && strings.Contains(u, ".m3u8"):
			out.Stream = &u
			out.ManifestFound = true
		case out.Subtitle == nil && strings.Contains(u, ".vtt"):
			out.Subtitle = &u
		}
		if out.Stream != nil && out.Subtitle != nil {
			break
		}
	}
	return out
}
