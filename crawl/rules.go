// Package crawl provides URL rules, the page queue, and about-page
// discovery used to plan which pages get processed per domain.
package crawl

import (
	"net/url"
	"path"
	"strings"
)

// staticExtensions are file extensions never worth fetching for text.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// IsSameDomain reports whether rawURL belongs to host. The comparison
// ignores a leading "www." on either side, so links between the bare and
// www forms of a site stay in scope.
func IsSameDomain(rawURL string, host string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return stripWWW(parsed.Host) == stripWWW(host)
}

// IsStaticAsset reports whether a URL points at an image, script, or
// other non-page resource.
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return staticExtensions[ext]
}

// NormalizeLink strips fragments and trailing slashes so the same page
// dedupes to one queue entry.
func NormalizeLink(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}

func stripWWW(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
