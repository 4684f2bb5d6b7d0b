package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_DedupsAndKeepsOrder(t *testing.T) {
	q := NewQueue()

	assert.True(t, q.Add("https://example.com/about"))
	assert.True(t, q.Add("https://example.com/team"))
	assert.False(t, q.Add("https://example.com/about"), "second add of the same URL")

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []string{"https://example.com/about", "https://example.com/team"}, q.All())
}

func TestQueue_ExcludeBlocksLaterAdd(t *testing.T) {
	q := NewQueue()
	q.Exclude("https://example.com")

	assert.False(t, q.Add("https://example.com"))
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.All())
}
