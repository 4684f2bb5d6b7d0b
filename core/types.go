package core

import "time"

// Region tags the part of a page a block of text came from.
type Region string

// Regions in extraction priority order.
const (
	RegionTitle    Region = "title"
	RegionMetaDesc Region = "meta_description"
	RegionHeading  Region = "heading"
	RegionAbout    Region = "about"
	RegionBody     Region = "body"
)

// FetchResult holds the outcome of fetching one URL, success or failure.
// Err is nil on success. A result is immutable once returned.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
	Attempts   int
	Err        error
}

// OK reports whether the fetch produced usable HTML.
func (r *FetchResult) OK() bool {
	return r != nil && r.Err == nil
}

// Block is one region-tagged run of text extracted from a page.
// Bulleted and enumerated structures become blocks whose text is
// newline-joined "- item" lines, so list shape survives into plain text.
type Block struct {
	Region Region `json:"region"`
	Text   string `json:"text"`
}

// PageText is the parser output for a single page. Title and meta blocks
// come first, then heading/about/body blocks in document order, which
// keeps each list adjacent to the heading that governs it.
type PageText struct {
	SourceURL string  `json:"source_url"`
	SiteName  string  `json:"site_name,omitempty"` // og:site_name, when present
	Blocks    []Block `json:"blocks"`
}

// NormalizedBlock is a cleaned block with sentence and list segmentation.
type NormalizedBlock struct {
	Region    Region
	Text      string
	Sentences []string
	ListItems []string
}

// NormalizedPage is the normalizer output for a single page.
type NormalizedPage struct {
	SourceURL string
	SiteName  string
	Blocks    []NormalizedBlock
}

// Candidate is an extracted value with provenance: the region it came
// from, a heuristic weight, and its discovery sequence within the page.
type Candidate struct {
	Value  string
	Region Region
	Weight int
	Seq    int
}

// Entities holds the name and founder candidates found on one page.
// Empty candidate lists are a valid outcome, not an error.
type Entities struct {
	NameCandidates []Candidate
	Founders       []Candidate
}

// ProductInfo aggregates product mentions from one or more pages.
// Each list is ordered by first occurrence and never contains
// case-insensitive duplicates.
type ProductInfo struct {
	Products     []string `json:"products,omitempty"`
	Features     []string `json:"features,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
}

// PageResult bundles the per-page stage outputs fed to the assembler.
type PageResult struct {
	Page     *NormalizedPage
	Entities Entities
	Products ProductInfo
}

// DomainPages is everything the pipeline gathered for one domain:
// the home fetch (always present, success or failure) and the pages
// that fetched and parsed successfully, in fetch order. ParseErr is
// set when the home page fetched but could not be parsed; Pages is
// empty in that case.
type DomainPages struct {
	Domain   string
	Home     *FetchResult
	Pages    []PageResult
	ParseErr error
}

// CompanyRecord is the assembled profile for one input domain. A record
// exists for every requested domain; when no page could be processed the
// optional fields are empty and ErrorKind marks the first failure.
// FetchedAt records when assembly ran and is the only field not derived
// from page content.
type CompanyRecord struct {
	Domain      string      `json:"domain"`
	CompanyName string      `json:"company_name,omitempty"`
	Description string      `json:"description,omitempty"`
	Founders    []string    `json:"founders,omitempty"`
	ProductInfo ProductInfo `json:"product_info"`
	Pages       []string    `json:"pages,omitempty"`
	Attempts    int         `json:"attempts,omitempty"`
	ErrorKind   string      `json:"error,omitempty"`
	FetchedAt   string      `json:"fetched_at"` // ISO8601
}

// Batch is the result of one runner invocation over a list of domains.
// Records appear in input order regardless of completion order.
type Batch struct {
	RunID     string           `json:"run_id"`
	StartedAt time.Time        `json:"started_at"`
	Elapsed   time.Duration    `json:"elapsed"`
	Records   []*CompanyRecord `json:"records"`
}

// Failed counts the records that carry an error marker.
func (b *Batch) Failed() int {
	n := 0
	for _, r := range b.Records {
		if r.ErrorKind != "" {
			n++
		}
	}
	return n
}
