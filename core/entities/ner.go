package entities

import (
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

// NER swaps the rule-based founder heuristics for prose person
// tagging, keeping the same company-name sources. Sentences are still
// gated on founder keywords so the tagger only sees relevant text.
type NER struct {
	rules *RuleBased
}

// NewNER creates a prose-backed extractor for the given founder
// keywords.
func NewNER(keywords []string) *NER {
	return &NER{rules: New(keywords)}
}

// Extract gathers company-name candidates with the shared rule
// heuristics and founder candidates from PERSON entities found in
// keyword sentences.
func (e *NER) Extract(page *core.NormalizedPage) core.Entities {
	ents := e.rules.Extract(page)
	ents.Founders = nil

	seq := len(ents.NameCandidates)
	seen := make(map[string]struct{})
	collect := func(region core.Region, text string) {
		if !e.rules.founderSentence(text) {
			return
		}
		doc, err := prose.NewDocument(text)
		if err != nil {
			return
		}
		for _, ent := range doc.Entities() {
			if ent.Label != "PERSON" {
				continue
			}
			name := strings.Join(strings.Fields(ent.Text), " ")
			if n := len(strings.Fields(name)); n < minNameTokens || n > maxNameTokens {
				continue
			}
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
	}
	for _, b := range page.Blocks {
		for _, s := range b.Sentences {
			collect(b.Region, s)
		}
		for _, item := range b.ListItems {
			collect(b.Region, item)
		}
	}
	return ents
}
