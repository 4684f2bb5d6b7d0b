// Package core defines the data model and pipeline interfaces for SequelSift.
// Each stage of the pipeline is a clean, testable interface; Pipeline wires
// the stages together for one domain and Runner fans out across domains.
package core

import "context"

// Fetcher retrieves raw HTML from a URL, normalizing the input and
// retrying transient failures. The returned FetchResult is non-nil even
// on error so callers always have the attempt count and status code.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*FetchResult, error)
}

// Parser turns raw HTML into region-tagged text blocks. Malformed markup
// degrades to best-effort output; an empty block list is valid.
type Parser interface {
	Parse(sourceURL, html string) (*PageText, error)
}

// Normalizer cleans parsed blocks: boilerplate removal, whitespace
// collapse, and sentence/list segmentation. Deterministic for a given
// input and configuration.
type Normalizer interface {
	Normalize(page *PageText) *NormalizedPage
}

// NameExtractor extracts company-name and founder candidates from a
// normalized page. Implementations range from capitalization heuristics
// to model-backed NER; all must treat empty findings as a valid result.
type NameExtractor interface {
	Extract(page *NormalizedPage) Entities
}

// ProductExtractor extracts product names, feature lists, and the
// sentences that mention them.
type ProductExtractor interface {
	Extract(page *NormalizedPage) ProductInfo
}

// Assembler merges everything gathered for a domain into one record.
type Assembler interface {
	Assemble(input DomainPages) *CompanyRecord
}

// Discoverer finds additional same-domain pages worth processing,
// typically about/team pages linked from the home page.
type Discoverer interface {
	Discover(html, baseURL string, limit int) []string
}

// Snapshotter archives a fetched page for later inspection.
type Snapshotter interface {
	Snapshot(domain, pageURL, html string) error
}

// Renderer converts a finished batch into an output format.
type Renderer interface {
	Render(batch *Batch) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".pdf").
	Extension() string
}
