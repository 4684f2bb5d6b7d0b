package crawl

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Discoverer finds about/team style pages linked from a fetched page.
// Only same-domain, non-asset links whose path or anchor text mention one
// of the configured keywords are returned.
type Discoverer struct {
	// Keywords matched case-insensitively against link paths and text,
	// e.g. "about", "team", "company".
	Keywords []string
}

// NewDiscoverer creates a Discoverer for the given keywords.
func NewDiscoverer(keywords []string) *Discoverer {
	return &Discoverer{Keywords: keywords}
}

// Discover scans html for candidate links, resolved against baseURL.
// Results are deduplicated, exclude the base page itself, and are capped
// at limit. A broken document yields no links rather than an error.
func (d *Discoverer) Discover(html, baseURL string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	queue := NewQueue()
	queue.Exclude(NormalizeLink(baseURL))

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return true
		}

		resolved := resolveURL(href, base)
		if resolved == "" {
			return true
		}
		if !IsSameDomain(resolved, base.Host) || IsStaticAsset(resolved) {
			return true
		}
		if !d.matches(resolved, s.Text()) {
			return true
		}

		queue.Add(NormalizeLink(resolved))
		return queue.Len() < limit
	})

	return queue.All()
}

// matches reports whether the link path or its anchor text contains one
// of the discovery keywords.
func (d *Discoverer) matches(rawURL, anchorText string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	haystackPath := strings.ToLower(parsed.Path)
	haystackText := strings.ToLower(anchorText)
	for _, kw := range d.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(haystackPath, kw) || strings.Contains(haystackText, kw) {
			return true
		}
	}
	return false
}

// resolveURL resolves a potentially relative URL against a base.
// Non-navigational schemes (mailto, javascript, tel) and bare fragments
// resolve to nothing.
func resolveURL(href string, base *url.URL) string {
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
