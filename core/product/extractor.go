// Package product implements the ProductExtractor interface.
// Product and feature mentions come from two sources: sentences that
// contain a product keyword, and list items governed by the nearest
// preceding heading.
package product

import (
	"strings"
	"unicode"

	"github.com/cloudflare/ahocorasick"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

// featureMarkers and productMarkers classify headings by substring,
// so "Capabilities" and "Features" both read as feature headings.
var (
	featureMarkers = []string{"feature", "capabilit", "benefit", "what we offer", "what you get"}
	productMarkers = []string{"product", "solution", "platform", "service", "offering"}
)

type headingClass int

const (
	headingOther headingClass = iota
	headingFeatures
	headingProducts
)

// Extractor finds product names, feature lists, and descriptive
// sentences on a normalized page. Safe for concurrent use.
type Extractor struct {
	keywords [][]string           // keyword token sequences, index-aligned with the matcher
	matcher  *ahocorasick.Matcher // sentence gate over the same keywords
}

// New creates an Extractor for the given product keywords, phrases
// like "we offer" or "our products".
func New(keywords []string) *Extractor {
	e := &Extractor{}
	var phrases []string
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		phrases = append(phrases, kw)
		e.keywords = append(e.keywords, strings.Fields(kw))
	}
	if len(phrases) > 0 {
		e.matcher = ahocorasick.NewStringMatcher(phrases)
	}
	return e
}

// Extract gathers product info from one page. Every output list is
// ordered by first occurrence and free of case-insensitive duplicates.
func (e *Extractor) Extract(page *core.NormalizedPage) core.ProductInfo {
	var info core.ProductInfo
	seenProducts := make(map[string]struct{})
	seenFeatures := make(map[string]struct{})
	seenDescriptions := make(map[string]struct{})

	lastHeading := headingOther
	for _, b := range page.Blocks {
		if b.Region == core.RegionHeading {
			lastHeading = classifyHeading(b.Text)
			continue
		}
		if len(b.ListItems) > 0 {
			switch lastHeading {
			case headingFeatures:
				for _, item := range b.ListItems {
					appendUnique(&info.Features, seenFeatures, item)
				}
			case headingProducts:
				for _, item := range b.ListItems {
					appendUnique(&info.Products, seenProducts, item)
				}
			}
			continue
		}
		for _, s := range b.Sentences {
			for _, name := range e.productNames(s) {
				appendUnique(&info.Products, seenProducts, name)
			}
			if e.keyworded(s) {
				appendUnique(&info.Descriptions, seenDescriptions, s)
			}
		}
	}
	return info
}

func classifyHeading(heading string) headingClass {
	h := strings.ToLower(heading)
	for _, m := range featureMarkers {
		if strings.Contains(h, m) {
			return headingFeatures
		}
	}
	for _, m := range productMarkers {
		if strings.Contains(h, m) {
			return headingProducts
		}
	}
	return headingOther
}

func (e *Extractor) keyworded(sentence string) bool {
	return e.matcher != nil && len(e.matcher.Match([]byte(strings.ToLower(sentence)))) > 0
}

// productNames extracts the capitalized names that follow a product
// keyword, as in "We offer Widget Pro and Gadget".
func (e *Extractor) productNames(sentence string) []string {
	if !e.keyworded(sentence) {
		return nil
	}

	toks := strings.Fields(sentence)
	low := make([]string, len(toks))
	for i, t := range toks {
		low[i] = strings.ToLower(trimPunct(t))
	}

	var names []string
	for _, kw := range e.keywords {
		for i := 0; i+len(kw) <= len(toks); i++ {
			if !matchAt(low, i, kw) {
				continue
			}
			names = append(names, namesAfter(toks, i+len(kw))...)
		}
	}
	return names
}

// namesAfter skips up to three connecting words after the keyword
// ("include", "are"), then collects comma/and-separated capitalized
// runs until ordinary prose resumes.
func namesAfter(toks []string, start int) []string {
	skipped := 0
	for start < len(toks) && !nameToken(toks[start]) {
		if skipped++; skipped > 3 {
			return nil
		}
		start++
	}

	var names []string
	var run []string
	flush := func() {
		if len(run) > 0 && len(run) <= 4 {
			names = append(names, strings.Join(run, " "))
		}
		run = nil
	}
	for i := start; i < len(toks); i++ {
		tok := toks[i]
		if connector(tok) {
			if len(run) == 0 && len(names) == 0 {
				break
			}
			flush()
			continue
		}
		if !nameToken(tok) {
			break
		}
		run = append(run, trimPunct(tok))
		if t := tok[len(tok)-1]; t == ',' || t == '.' || t == ';' {
			flush()
		}
	}
	flush()
	return names
}

// nameToken accepts capitalized tokens, including all-caps product
// names, but not bare numbers or punctuation.
func nameToken(tok string) bool {
	t := trimPunct(tok)
	if len(t) < 2 {
		return false
	}
	return unicode.IsUpper([]rune(t)[0])
}

func connector(tok string) bool {
	l := strings.ToLower(trimPunct(tok))
	return l == "and" || l == "&" || trimPunct(tok) == ""
}

func matchAt(low []string, i int, kw []string) bool {
	for j, w := range kw {
		if low[i+j] != w {
			return false
		}
	}
	return true
}

func trimPunct(tok string) string {
	return strings.TrimFunc(tok, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

func appendUnique(list *[]string, seen map[string]struct{}, value string) {
	key := strings.ToLower(value)
	if _, ok := seen[key]; ok {
		return
	}
	seen[key] = struct{}{}
	*list = append(*list, value)
}
