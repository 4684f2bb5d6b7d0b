// Package assemble implements the Assembler interface.
// It merges per-page extraction results for one domain into a single
// CompanyRecord, applying the cross-page priority and dedup rules.
package assemble

import (
	"time"

	"golang.org/x/text/cases"

	"github.com/EmmanuelEzenwere/SequelSift/core"
)

// defaultMinDescription filters out stub paragraphs when choosing the
// record description.
const defaultMinDescription = 40

// descriptionPriority orders the regions a description may come from.
// Any match in an earlier region, on any page, beats a later region.
var descriptionPriority = []core.Region{
	core.RegionMetaDesc,
	core.RegionAbout,
	core.RegionBody,
}

// Assembler merges page results into company records. Every field but
// FetchedAt derives from the input alone; with a fixed Now, assembling
// the same input twice yields identical records.
type Assembler struct {
	MinDescriptionLen int
	Now               func() time.Time // stubbed in tests
}

// New creates an Assembler. A non-positive minimum description length
// falls back to the default.
func New(minDescriptionLen int) *Assembler {
	if minDescriptionLen <= 0 {
		minDescriptionLen = defaultMinDescription
	}
	return &Assembler{MinDescriptionLen: minDescriptionLen, Now: time.Now}
}

// Assemble builds the record for one domain. A record is produced even
// when every fetch failed; the home fetch contributes the attempt count
// and, on failure, the error kind. A home page that fetched but could
// not be parsed supplies the kind the same way.
func (a *Assembler) Assemble(domain core.DomainPages) *core.CompanyRecord {
	rec := &core.CompanyRecord{
		Domain:    domain.Domain,
		FetchedAt: a.now().UTC().Format(time.RFC3339),
	}
	if home := domain.Home; home != nil {
		rec.Attempts = home.Attempts
		if !home.OK() {
			rec.ErrorKind = string(core.KindOf(home.Err))
		}
	}
	if rec.ErrorKind == "" && domain.ParseErr != nil {
		rec.ErrorKind = string(core.KindOf(domain.ParseErr))
	}

	rec.CompanyName = companyName(domain.Pages)
	rec.Description = a.description(domain.Pages)
	rec.Founders = founders(domain.Pages)
	rec.ProductInfo = products(domain.Pages)
	for _, p := range domain.Pages {
		if p.Page != nil {
			rec.Pages = append(rec.Pages, p.Page.SourceURL)
		}
	}
	return rec
}

// companyName picks the highest-weight candidate; ties keep the first
// seen in page order.
func companyName(pages []core.PageResult) string {
	var best *core.Candidate
	for _, p := range pages {
		for i := range p.Entities.NameCandidates {
			if c := &p.Entities.NameCandidates[i]; best == nil || c.Weight > best.Weight {
				best = c
			}
		}
	}
	if best == nil {
		return ""
	}
	return best.Value
}

// description returns the first qualifying block text by region
// priority. Meta descriptions always qualify; about and body blocks
// must meet the minimum length to weed out stubs.
func (a *Assembler) description(pages []core.PageResult) string {
	for _, region := range descriptionPriority {
		for _, p := range pages {
			if p.Page == nil {
				continue
			}
			for _, b := range p.Page.Blocks {
				if b.Region != region || len(b.ListItems) > 0 {
					continue
				}
				if region != core.RegionMetaDesc && len(b.Text) < a.MinDescriptionLen {
					continue
				}
				if b.Text != "" {
					return b.Text
				}
			}
		}
	}
	return ""
}

func founders(pages []core.PageResult) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range pages {
		for _, c := range p.Entities.Founders {
			key := foldKey(c.Value)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, c.Value)
		}
	}
	return out
}

func products(pages []core.PageResult) core.ProductInfo {
	var info core.ProductInfo
	seenProducts := make(map[string]struct{})
	seenFeatures := make(map[string]struct{})
	seenDescriptions := make(map[string]struct{})
	for _, p := range pages {
		mergeUnique(&info.Products, seenProducts, p.Products.Products)
		mergeUnique(&info.Features, seenFeatures, p.Products.Features)
		mergeUnique(&info.Descriptions, seenDescriptions, p.Products.Descriptions)
	}
	return info
}

func mergeUnique(dst *[]string, seen map[string]struct{}, values []string) {
	for _, v := range values {
		key := foldKey(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		*dst = append(*dst, v)
	}
}

// foldKey builds the case-insensitive dedup key. A fresh Caser per
// call because Casers are not safe for concurrent use.
func foldKey(s string) string {
	return cases.Fold().String(s)
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
