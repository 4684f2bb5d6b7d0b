// Package normalize implements the Normalizer interface.
// It cleans parsed blocks into analysis-ready text: Unicode NFC
// normalization, whitespace collapse, boilerplate removal against a
// configurable phrase denylist, and sentence segmentation.
package normalize

import (
	"fmt"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

// Normalizer cleans PageText blocks. It is safe for concurrent use
// once constructed, and its output depends only on its input.
type Normalizer struct {
	denylist *ahocorasick.Matcher // nil when no phrases are configured
	tok      *sentences.DefaultSentenceTokenizer
}

// New creates a Normalizer whose denylist drops any sentence or list
// item containing one of the given phrases, case-insensitively.
func New(denylist []string) (*Normalizer, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading sentence tokenizer: %w", err)
	}

	n := &Normalizer{tok: tok}
	var phrases []string
	for _, d := range denylist {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			phrases = append(phrases, d)
		}
	}
	if len(phrases) > 0 {
		n.denylist = ahocorasick.NewStringMatcher(phrases)
	}
	return n, nil
}

// Normalize cleans every block of a page. Blocks whose text is empty
// after cleaning, or entirely boilerplate, are dropped.
func (n *Normalizer) Normalize(page *core.PageText) *core.NormalizedPage {
	out := &core.NormalizedPage{
		SourceURL: page.SourceURL,
		SiteName:  clean(page.SiteName),
	}
	for _, b := range page.Blocks {
		if nb := n.normalizeBlock(b); nb != nil {
			out.Blocks = append(out.Blocks, *nb)
		}
	}
	return out
}

func (n *Normalizer) normalizeBlock(b core.Block) *core.NormalizedBlock {
	if isList(b.Text) {
		return n.normalizeList(b)
	}

	text := clean(b.Text)
	if text == "" {
		return nil
	}
	var kept []string
	for _, s := range n.split(text) {
		if !n.boilerplate(s) {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return &core.NormalizedBlock{
		Region:    b.Region,
		Text:      strings.Join(kept, " "),
		Sentences: kept,
	}
}

func (n *Normalizer) normalizeList(b core.Block) *core.NormalizedBlock {
	var items []string
	for _, line := range strings.Split(b.Text, "\n") {
		line = strings.TrimPrefix(strings.TrimSpace(line), "- ")
		item := clean(line)
		if item == "" || n.boilerplate(item) {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil
	}
	return &core.NormalizedBlock{
		Region:    b.Region,
		Text:      "- " + strings.Join(items, "\n- "),
		ListItems: items,
	}
}

// boilerplate reports whether a sentence or list item contains any
// denylisted phrase.
func (n *Normalizer) boilerplate(s string) bool {
	if n.denylist == nil {
		return false
	}
	return len(n.denylist.Match([]byte(strings.ToLower(s)))) > 0
}

func isList(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "- ")
}
