package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSameDomain(t *testing.T) {
	tests := []struct {
		name string
		url  string
		host string
		want bool
	}{
		{"exact match", "https://example.com/about", "example.com", true},
		{"www on link", "https://www.example.com/about", "example.com", true},
		{"www on host", "https://example.com", "www.example.com", true},
		{"different domain", "https://other.com/about", "example.com", false},
		{"subdomain is different", "https://blog.example.com", "example.com", false},
		{"unparseable", "://bad", "example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSameDomain(tt.url, tt.host))
		})
	}
}

func TestIsStaticAsset(t *testing.T) {
	assert.True(t, IsStaticAsset("https://example.com/logo.png"))
	assert.True(t, IsStaticAsset("https://example.com/styles/main.css"))
	assert.True(t, IsStaticAsset("https://example.com/brochure.PDF"))
	assert.False(t, IsStaticAsset("https://example.com/about"))
	assert.False(t, IsStaticAsset("https://example.com/"))
}

func TestNormalizeLink(t *testing.T) {
	assert.Equal(t, "https://example.com/about", NormalizeLink("https://example.com/about/"))
	assert.Equal(t, "https://example.com/about", NormalizeLink("https://example.com/about#team"))
	assert.Equal(t, "https://example.com/", NormalizeLink("https://example.com/"))
}
