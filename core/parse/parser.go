// Package parse turns fetched HTML into region-tagged text blocks.
// It reads the title and description metadata from the head, strips
// noise elements, then walks the best content container in document
// order emitting heading, about, and body blocks. Bulleted lists are
// rendered as "- item" lines so their shape survives into plain text.
package parse

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

// noiseSelectors are HTML elements removed before the content walk.
// These contribute no meaningful company text.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header", "aside",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement", ".cookie-banner",
}

// aboutMarkers flag containers whose text belongs to the about region
// when they appear in a class or id attribute.
var aboutMarkers = []string{"about", "team", "company", "mission", "story"}

// blockSelector matches the elements the content walk visits, in
// document order.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, blockquote, ul, ol, div"

// Error marks a page whose HTML could not be parsed at all.
type Error struct {
	URL string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("parsing %s: %v", e.URL, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// ErrKind classifies the failure for record assembly.
func (e *Error) ErrKind() core.ErrKind { return core.KindParse }

// Parser extracts region-tagged text blocks from raw HTML.
type Parser struct {
	aboutSel string
}

// New creates a Parser.
func New() *Parser {
	var parts []string
	for _, m := range aboutMarkers {
		parts = append(parts, fmt.Sprintf("[class*=%q]", m), fmt.Sprintf("[id*=%q]", m))
	}
	return &Parser{aboutSel: strings.Join(parts, ", ")}
}

// Parse converts one page of HTML into region-tagged blocks. Malformed
// markup degrades to whatever the HTML tokenizer can recover; a page
// with no extractable text yields empty Blocks and a nil error.
func (p *Parser) Parse(sourceURL, html string) (*core.PageText, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{URL: sourceURL, Err: err}
	}

	page := &core.PageText{SourceURL: sourceURL}

	// 1. Harvest head metadata before anything is removed.
	if t := squash(doc.Find("title").First().Text()); t != "" {
		page.Blocks = append(page.Blocks, core.Block{Region: core.RegionTitle, Text: t})
	}
	if d := metaDescription(doc); d != "" {
		page.Blocks = append(page.Blocks, core.Block{Region: core.RegionMetaDesc, Text: d})
	}
	page.SiteName = squash(metaContent(doc, "meta[property='og:site_name']"))

	// 2. Remove noise elements (operates on the whole document).
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// 3. Find the best content container in priority order.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return page, nil
	}

	// 4. Walk the container in document order.
	sawText := false
	content.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if t := squash(s.Text()); t != "" {
				page.Blocks = append(page.Blocks, core.Block{Region: core.RegionHeading, Text: t})
			}
		case "ul", "ol":
			// Nested lists are flattened into their top-level items.
			if s.ParentsFiltered("ul, ol").Length() > 0 {
				return
			}
			if t := listText(s); t != "" {
				page.Blocks = append(page.Blocks, core.Block{Region: p.textRegion(s), Text: t})
				sawText = true
			}
		case "div":
			// Only leaf divs carry their own text; a div with block
			// descendants at any depth is a wrapper, covered by the
			// blocks inside it.
			if s.Find(blockSelector).Length() > 0 {
				return
			}
			fallthrough
		case "p", "blockquote":
			if t := squash(s.Text()); t != "" {
				page.Blocks = append(page.Blocks, core.Block{Region: p.textRegion(s), Text: t})
				sawText = true
			}
		}
	})

	// 5. Pages built without paragraph markup still get one body block.
	if !sawText {
		if t := squash(content.Text()); t != "" {
			page.Blocks = append(page.Blocks, core.Block{Region: core.RegionBody, Text: t})
		}
	}

	return page, nil
}

// textRegion decides whether an element's text belongs to the about or
// the general body region, based on its ancestor chain.
func (p *Parser) textRegion(s *goquery.Selection) core.Region {
	if s.Closest(p.aboutSel).Length() > 0 {
		return core.RegionAbout
	}
	return core.RegionBody
}

// metaDescription returns the page description, preferring the standard
// meta tag over the Open Graph one.
func metaDescription(doc *goquery.Document) string {
	if d := squash(metaContent(doc, "meta[name='description']")); d != "" {
		return d
	}
	return squash(metaContent(doc, "meta[property='og:description']"))
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return content
}

// listText renders a list's top-level items as "- item" lines.
func listText(s *goquery.Selection) string {
	var lines []string
	s.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if t := squash(li.Text()); t != "" {
			lines = append(lines, "- "+t)
		}
	})
	return strings.Join(lines, "\n")
}

// squash trims an extracted string and collapses internal whitespace,
// which goquery's Text() leaves full of layout newlines.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
