package extractor

import (
	"crypto/sha1"
	"encoding/hex"
	"net/url"
	"strings"
)

// videoID derives a stable identifier for a candidate URL so repeated
// attempts at the same video overwrite one output file instead of piling up.
// YouTube URLs yield the native video id; anything else gets a short hash of
// the full URL.
func videoID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err == nil {
		host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
		switch host {
		case "youtu.be":
			if id := strings.Trim(u.Path, "/"); id != "" {
				return id
			}
		case "youtube.com", "m.youtube.com":
			if u.Path == "/watch" {
				if id := u.Query().Get("v"); id != "" {
					return id
				}
			}
			for _, prefix := range []string{"/embed/", "/shorts/", "/v/"} {
				if strings.HasPrefix(u.Path, prefix) {
					rest := strings.TrimPrefix(u.Path, prefix)
					if id := strings.SplitN(rest, "/", 2)[0]; id != "" {
						return id
					}
				}
			}
		}
	}

	sum := sha1.Sum([]byte(rawURL))
	return hex.EncodeToString(sum[:])[:12]
}
