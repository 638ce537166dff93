package models

// ServerRecord holds the outcome of one embed server's extraction attempt.
// It lives only for the duration of a single request/response cycle.
//
// A record never guarantees the stream is playable, only that a URL of the
// expected shape was found in the deobfuscated embed script.
type ServerRecord struct {
	Name            string  `json:"name"`
	EmbedLink       string  `json:"embedLink"`
	IsManifestFound bool    `json:"isManifestFound"`
	Skipped         bool    `json:"skipped"`
	StreamURL       *string `json:"streamUrl"`
	SubtitleURL     *string `json:"subtitleUrl"`
	Error           *string `json:"error"`
}
