package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDiscoverer() *Discoverer {
	return NewDiscoverer([]string{"about", "team", "company"})
}

func TestDiscover_FindsAboutLinks(t *testing.T) {
	html := `
	<html><body>
		<nav>
			<a href="/">Home</a>
			<a href="/pricing">Pricing</a>
			<a href="/about-us">About Us</a>
			<a href="/team/">Meet the Team</a>
		</nav>
	</body></html>`

	links := testDiscoverer().Discover(html, "https://example.com", 5)
	require.Len(t, links, 2)
	assert.Equal(t, "https://example.com/about-us", links[0])
	assert.Equal(t, "https://example.com/team", links[1])
}

func TestDiscover_MatchesAnchorTextToo(t *testing.T) {
	html := `<a href="/who-we-are">Our Company</a>`

	links := testDiscoverer().Discover(html, "https://example.com", 5)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/who-we-are", links[0])
}

func TestDiscover_SkipsOffDomainAndAssets(t *testing.T) {
	html := `
	<a href="https://other.com/about">About someone else</a>
	<a href="/about.pdf">About (PDF)</a>
	<a href="mailto:team@example.com">Email the team</a>
	<a href="/about">About</a>`

	links := testDiscoverer().Discover(html, "https://example.com", 5)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/about", links[0])
}

func TestDiscover_DedupsAndCaps(t *testing.T) {
	html := `
	<a href="/about">About</a>
	<a href="/about/">About (footer)</a>
	<a href="/about#mission">Mission</a>
	<a href="/team">Team</a>
	<a href="/company">Company</a>`

	links := testDiscoverer().Discover(html, "https://example.com", 2)
	assert.Equal(t, []string{"https://example.com/about", "https://example.com/team"}, links)
}

func TestDiscover_ExcludesBasePage(t *testing.T) {
	// The home page often links to itself with an about-ish anchor.
	html := `<a href="/">About Acme</a><a href="/about">About</a>`

	links := testDiscoverer().Discover(html, "https://example.com/", 5)
	assert.Equal(t, []string{"https://example.com/about"}, links)
}

func TestDiscover_BrokenInput(t *testing.T) {
	assert.Nil(t, testDiscoverer().Discover("<a href=", "https://example.com", 0))
	assert.Nil(t, testDiscoverer().Discover("", "://bad-base", 5))
}
