package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

var testKeywords = []string{
	"founder", "co-founder", "founders", "ceo", "chief executive",
	"founded by", "started by", "created by",
}

func founderValues(ents core.Entities) []string {
	var out []string
	for _, c := range ents.Founders {
		out = append(out, c.Value)
	}
	return out
}

func aboutPage(sentences ...string) *core.NormalizedPage {
	page := &core.NormalizedPage{SourceURL: "https://acme.example"}
	for _, s := range sentences {
		page.Blocks = append(page.Blocks, core.NormalizedBlock{
			Region:    core.RegionAbout,
			Text:      s,
			Sentences: []string{s},
		})
	}
	return page
}

func TestExtract_FoundersFromAttribution(t *testing.T) {
	ents := New(testKeywords).Extract(aboutPage(
		"Acme Robotics was founded by Jane Doe and John Roe in 2020.",
	))

	assert.Equal(t, []string{"Jane Doe", "John Roe"}, founderValues(ents))
}

func TestExtract_FoundersFromCommaList(t *testing.T) {
	ents := New(testKeywords).Extract(aboutPage(
		"The studio was created by Jane Doe, John Roe and Sam Poe.",
	))

	assert.Equal(t, []string{"Jane Doe", "John Roe", "Sam Poe"}, founderValues(ents))
}

func TestExtract_FoundersFromRoleKeywords(t *testing.T) {
	page := aboutPage("Chief Executive Mary Major joined us early.")
	page.Blocks = append(page.Blocks, core.NormalizedBlock{
		Region:    core.RegionAbout,
		Text:      "- Jane Doe — Co-Founder\n- John Roe — CEO",
		ListItems: []string{"Jane Doe — Co-Founder", "John Roe — CEO"},
	})

	ents := New(testKeywords).Extract(page)
	assert.Equal(t, []string{"Mary Major", "Jane Doe", "John Roe"}, founderValues(ents))
}

func TestExtract_RejectsJunkFounders(t *testing.T) {
	ents := New(testKeywords).Extract(aboutPage(
		"Our Founder loves robots.",
		"We were founded by our community.",
		"MEET THE FOUNDERS",
		"The CEO said revenue doubled.",
	))

	assert.Empty(t, ents.Founders)
}

func TestExtract_DedupsFoundersWithinPage(t *testing.T) {
	ents := New(testKeywords).Extract(aboutPage(
		"Acme was founded by Jane Doe.",
		"Jane Doe, Founder, still reviews every release.",
	))

	assert.Equal(t, []string{"Jane Doe"}, founderValues(ents))
}

func TestExtract_SkipsHonorifics(t *testing.T) {
	ents := New(testKeywords).Extract(aboutPage(
		"The lab was founded by Dr. Jane Doe.",
	))

	assert.Equal(t, []string{"Jane Doe"}, founderValues(ents))
}

func TestExtract_NameCandidateWeights(t *testing.T) {
	page := &core.NormalizedPage{
		SiteName: "Acme Robotics",
		Blocks: []core.NormalizedBlock{
			{Region: core.RegionTitle, Text: "Acme Robotics | Home", Sentences: []string{"Acme Robotics | Home"}},
			{Region: core.RegionBody, Text: "Acme Robotics ships daily.", Sentences: []string{"Acme Robotics ships daily."}},
			{Region: core.RegionAbout, Text: "Acme Robotics started in Berlin.", Sentences: []string{"Acme Robotics started in Berlin."}},
		},
	}

	ents := New(testKeywords).Extract(page)
	require.Len(t, ents.NameCandidates, 3)

	assert.Equal(t, "Acme Robotics", ents.NameCandidates[0].Value)
	assert.Equal(t, weightSiteName, ents.NameCandidates[0].Weight)
	assert.Equal(t, "Acme Robotics", ents.NameCandidates[1].Value)
	assert.Equal(t, weightTitle, ents.NameCandidates[1].Weight)
	assert.Equal(t, "Acme Robotics", ents.NameCandidates[2].Value)
	assert.Equal(t, weightFallback, ents.NameCandidates[2].Weight)

	// Seq records discovery order across all candidates.
	for i, c := range ents.NameCandidates {
		assert.Equal(t, i, c.Seq)
	}
}

func TestExtract_FrequentRunNeedsRepeats(t *testing.T) {
	ents := New(testKeywords).Extract(aboutPage(
		"Zeta Widgets appeared once.",
	))

	assert.Empty(t, ents.NameCandidates)
}

func TestExtract_EmptyPage(t *testing.T) {
	ents := New(testKeywords).Extract(&core.NormalizedPage{})

	assert.Empty(t, ents.NameCandidates)
	assert.Empty(t, ents.Founders)
}
