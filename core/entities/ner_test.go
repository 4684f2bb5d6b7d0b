package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

func TestNER_FindsPersonsInKeywordSentences(t *testing.T) {
	ents := NewNER(testKeywords).Extract(aboutPage(
		"The company was founded by Barack Obama and Michelle Obama.",
	))

	values := founderValues(ents)
	assert.Contains(t, values, "Barack Obama")
	assert.Contains(t, values, "Michelle Obama")
}

func TestNER_IgnoresSentencesWithoutKeywords(t *testing.T) {
	ents := NewNER(testKeywords).Extract(aboutPage(
		"Barack Obama visited the office last week.",
	))

	assert.Empty(t, ents.Founders)
}

func TestNER_KeepsRuleBasedNameSources(t *testing.T) {
	page := &core.NormalizedPage{
		SiteName: "Acme Robotics",
		Blocks: []core.NormalizedBlock{
			{Region: core.RegionTitle, Text: "Acme Robotics | Home", Sentences: []string{"Acme Robotics | Home"}},
		},
	}

	ents := NewNER(testKeywords).Extract(page)
	require.Len(t, ents.NameCandidates, 2)
	assert.Equal(t, "Acme Robotics", ents.NameCandidates[0].Value)
	assert.Equal(t, weightSiteName, ents.NameCandidates[0].Weight)
}
