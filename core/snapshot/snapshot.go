// Package snapshot archives fetched pages as Markdown.
// It isolates the main content container the same way the parser does,
// converts it with html-to-markdown, and writes one file per page
// under the output directory's snapshots/ subtree.
package snapshot

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/EmmanuelEzenwere/SequelSift/core/output"
)

// noiseSelectors are elements dropped before conversion. Markdown
// keeps lists and tables, so only chrome and media are removed.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header", "aside",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
}

// Archiver converts page HTML to Markdown snapshots.
type Archiver struct {
	writer *output.Writer
}

// New creates an Archiver writing through the given Writer.
func New(w *output.Writer) *Archiver {
	return &Archiver{writer: w}
}

// Snapshot archives one fetched page. Pages with no convertible
// content are skipped silently.
func (a *Archiver) Snapshot(domain, pageURL, html string) error {
	md, err := markdown(html)
	if err != nil {
		return err
	}
	if strings.TrimSpace(md) == "" {
		return nil
	}
	_, err = a.writer.WriteSnapshot(domain, pageURL, []byte(md))
	return err
}

// markdown isolates the best content container and converts it.
func markdown(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return "", nil
	}

	fragment, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	md, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return md, nil
}
