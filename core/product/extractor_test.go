package product

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

var testKeywords = []string{
	"our product", "our products", "we offer", "we provide", "we build",
	"our platform", "our solution", "features include",
}

func sentenceBlock(region core.Region, sentences ...string) core.NormalizedBlock {
	return core.NormalizedBlock{
		Region:    region,
		Text:      strings.Join(sentences, " "),
		Sentences: sentences,
	}
}

func headingBlock(text string) core.NormalizedBlock {
	return core.NormalizedBlock{Region: core.RegionHeading, Text: text, Sentences: []string{text}}
}

func listBlock(items ...string) core.NormalizedBlock {
	return core.NormalizedBlock{Region: core.RegionBody, ListItems: items}
}

func TestExtract_FeatureListUnderHeading(t *testing.T) {
	page := &core.NormalizedPage{Blocks: []core.NormalizedBlock{
		headingBlock("Features"),
		listBlock("Autopilot", "Navigation"),
	}}

	info := New(testKeywords).Extract(page)
	assert.Equal(t, []string{"Autopilot", "Navigation"}, info.Features)
	assert.Empty(t, info.Products)
}

func TestExtract_ProductListUnderHeading(t *testing.T) {
	page := &core.NormalizedPage{Blocks: []core.NormalizedBlock{
		headingBlock("Our Products"),
		listBlock("Widget", "Gadget"),
	}}

	info := New(testKeywords).Extract(page)
	assert.Equal(t, []string{"Widget", "Gadget"}, info.Products)
	assert.Empty(t, info.Features)
}

func TestExtract_FeatureBeatsProductInMixedHeading(t *testing.T) {
	page := &core.NormalizedPage{Blocks: []core.NormalizedBlock{
		headingBlock("Product Features"),
		listBlock("Autopilot"),
	}}

	info := New(testKeywords).Extract(page)
	assert.Equal(t, []string{"Autopilot"}, info.Features)
	assert.Empty(t, info.Products)
}

func TestExtract_ListWithoutHeadingIgnored(t *testing.T) {
	page := &core.NormalizedPage{Blocks: []core.NormalizedBlock{
		listBlock("Autopilot", "Navigation"),
	}}

	info := New(testKeywords).Extract(page)
	assert.Empty(t, info.Features)
	assert.Empty(t, info.Products)
}

func TestExtract_SentenceProducts(t *testing.T) {
	page := &core.NormalizedPage{Blocks: []core.NormalizedBlock{
		sentenceBlock(core.RegionBody, "We offer Widget Pro and Gadget."),
	}}

	info := New(testKeywords).Extract(page)
	assert.Equal(t, []string{"Widget Pro", "Gadget"}, info.Products)
	assert.Equal(t, []string{"We offer Widget Pro and Gadget."}, info.Descriptions)
}

func TestExtract_SkipsConnectingWords(t *testing.T) {
	page := &core.NormalizedPage{Blocks: []core.NormalizedBlock{
		sentenceBlock(core.RegionBody, "Our products include Widget and Gadget."),
	}}

	info := New(testKeywords).Extract(page)
	assert.Equal(t, []string{"Widget", "Gadget"}, info.Products)
}

func TestExtract_DescriptionWithoutProductName(t *testing.T) {
	page := &core.NormalizedPage{Blocks: []core.NormalizedBlock{
		sentenceBlock(core.RegionBody, "We provide robots for warehouse logistics."),
	}}

	info := New(testKeywords).Extract(page)
	assert.Empty(t, info.Products)
	assert.Equal(t, []string{"We provide robots for warehouse logistics."}, info.Descriptions)
}

func TestExtract_OrderedCaseInsensitiveDedup(t *testing.T) {
	page := &core.NormalizedPage{Blocks: []core.NormalizedBlock{
		headingBlock("Products"),
		listBlock("Widget", "Gadget", "widget"),
	}}

	info := New(testKeywords).Extract(page)
	assert.Equal(t, []string{"Widget", "Gadget"}, info.Products)
}

func TestExtract_NoKeywordsNoOutput(t *testing.T) {
	page := &core.NormalizedPage{Blocks: []core.NormalizedBlock{
		sentenceBlock(core.RegionBody, "Plain prose about the weather."),
	}}

	info := New(testKeywords).Extract(page)
	assert.Empty(t, info.Products)
	assert.Empty(t, info.Features)
	assert.Empty(t, info.Descriptions)
}
