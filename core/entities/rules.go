// Package entities implements the NameExtractor interface.
// The rule-based extractor derives company-name candidates from page
// metadata and title structure, and founder candidates from sentences
// mentioning a founder keyword. A prose-backed variant swaps the
// founder rules for person tagging.
package entities

import (
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

// Candidate weights by source strength.
const (
	weightSiteName = 3
	weightTitle    = 2
	weightFallback = 1
)

// RuleBased extracts company names and founders with deterministic
// heuristics, no model required. Safe for concurrent use.
type RuleBased struct {
	keywords [][]string           // keyword token sequences, index-aligned with the matcher
	matcher  *ahocorasick.Matcher // sentence gate over the same keywords
}

// New creates a RuleBased extractor for the given founder keywords.
// Keywords ending in "by" attribute the names that follow them
// ("founded by Jane Doe"); role keywords match the name on either
// side ("Jane Doe, Founder" and "CEO Jane Doe").
func New(keywords []string) *RuleBased {
	e := &RuleBased{}
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

// Extract gathers name and founder candidates from one page. Finding
// nothing is a valid outcome and yields empty candidate lists.
func (e *RuleBased) Extract(page *core.NormalizedPage) core.Entities {
	var ents core.Entities
	seq := 0
	addName := func(value string, region core.Region, weight int) {
		ents.NameCandidates = append(ents.NameCandidates, core.Candidate{
			Value: value, Region: region, Weight: weight, Seq: seq,
		})
		seq++
	}

	// Company-name sources, strongest first.
	if page.SiteName != "" {
		addName(page.SiteName, core.RegionMetaDesc, weightSiteName)
	}
	if title := firstText(page, core.RegionTitle); title != "" {
		if name := nameFromTitle(title); name != "" {
			addName(name, core.RegionTitle, weightTitle)
		}
	}
	if value, region := e.frequentRun(page); value != "" {
		addName(value, region, weightFallback)
	}

	// Founders from keyword sentences and list items, in page order.
	seen := make(map[string]struct{})
	for _, b := range page.Blocks {
		for _, s := range b.Sentences {
			seq = e.addFounders(&ents, b.Region, s, seen, seq)
		}
		for _, item := range b.ListItems {
			seq = e.addFounders(&ents, b.Region, item, seen, seq)
		}
	}
	return ents
}

func (e *RuleBased) addFounders(ents *core.Entities, region core.Region, text string, seen map[string]struct{}, seq int) int {
	for _, name := range e.founderNames(text) {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ents.Founders = append(ents.Founders, core.Candidate{
			Value: name, Region: region, Weight: 1, Seq: seq,
		})
		seq++
	}
	return seq
}

// founderNames returns the person names a single sentence or list item
// attributes as founders or leadership.
func (e *RuleBased) founderNames(sentence string) []string {
	if e.matcher == nil {
		return nil
	}
	hits := e.matcher.Match([]byte(strings.ToLower(sentence)))
	if len(hits) == 0 {
		return nil
	}

	toks := strings.Fields(sentence)
	low := make([]string, len(toks))
	for i, t := range toks {
		low[i] = lowerTok(t)
	}

	var names []string
	for _, hit := range hits {
		kw := e.keywords[hit]
		for i := 0; i+len(kw) <= len(toks); i++ {
			if !matchAt(low, i, kw) {
				continue
			}
			if isAttribution(kw) {
				names = append(names, namesAfter(toks, i+len(kw))...)
				continue
			}
			if n := nameBefore(toks, i); n != "" {
				names = append(names, n)
			}
			if n := nameAfterRole(toks, i+len(kw)); n != "" {
				names = append(names, n)
			}
		}
	}
	return names
}

// founderSentence reports whether the text mentions any founder
// keyword. The prose-backed extractor uses it as its sentence gate.
func (e *RuleBased) founderSentence(text string) bool {
	return e.matcher != nil && len(e.matcher.Match([]byte(strings.ToLower(text)))) > 0
}

func matchAt(low []string, i int, kw []string) bool {
	for j, w := range kw {
		if low[i+j] != w {
			return false
		}
	}
	return true
}

// isAttribution distinguishes "founded by" style keywords, whose names
// follow them, from role nouns like "founder".
func isAttribution(kw []string) bool {
	return kw[len(kw)-1] == "by"
}

type runCount struct {
	value  string
	region core.Region
	count  int
	first  int
}

// frequentRun finds the most repeated proper-noun phrase across the
// page, the weakest company-name source. A phrase must appear at least
// twice; ties go to the earliest occurrence.
func (e *RuleBased) frequentRun(page *core.NormalizedPage) (string, core.Region) {
	counts := make(map[string]*runCount)
	pos := 0
	note := func(region core.Region, text string) {
		for _, run := range properRuns(strings.Fields(text)) {
			value := strings.Join(run, " ")
			key := strings.ToLower(value)
			if c, ok := counts[key]; ok {
				c.count++
			} else {
				counts[key] = &runCount{value: value, region: region, count: 1, first: pos}
			}
			pos++
		}
	}
	for _, b := range page.Blocks {
		for _, s := range b.Sentences {
			note(b.Region, s)
		}
		for _, item := range b.ListItems {
			note(b.Region, item)
		}
	}

	var best *runCount
	for _, c := range counts {
		if c.count < 2 {
			continue
		}
		if best == nil || c.count > best.count || (c.count == best.count && c.first < best.first) {
			best = c
		}
	}
	if best == nil {
		return "", ""
	}
	return best.value, best.region
}

func firstText(page *core.NormalizedPage, region core.Region) string {
	for _, b := range page.Blocks {
		if b.Region == region {
			return b.Text
		}
	}
	return ""
}
