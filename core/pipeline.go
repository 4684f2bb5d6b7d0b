package core

import (
	"context"
	"net/url"
	"strings"

	"github.com/EmmanuelEzenwere/SequelSift/logger"
)

// Pipeline runs the extraction sequence for one domain: fetch the home
// page, discover about-style pages, then parse, normalize, and extract
// each page before assembling the record. Only the home fetch and the
// home parse can fail the domain; secondary-page failures degrade to
// fewer pages.
type Pipeline struct {
	Fetcher    Fetcher
	Parser     Parser
	Normalizer Normalizer
	Names      NameExtractor
	Products   ProductExtractor
	Assembler  Assembler
	Discoverer Discoverer  // optional, nil stops at the home page
	Snapshots  Snapshotter // optional
	Log        logger.Interface

	// MaxPages caps pages per domain, home page included.
	MaxPages int
}

// AnalyzeDomain produces the record for one input domain. It always
// returns a record: fetch and parse failures are recorded on it, never
// raised.
func (p *Pipeline) AnalyzeDomain(ctx context.Context, rawDomain string) *CompanyRecord {
	domain := DisplayDomain(rawDomain)
	log := p.log().With("domain", domain)

	home, err := p.Fetcher.Fetch(ctx, rawDomain)
	if home == nil {
		home = &FetchResult{URL: rawDomain, Err: err}
	}
	pages := DomainPages{Domain: domain, Home: home}

	if home.OK() {
		p.snapshot(log, domain, home)
		if page, perr := p.processPage(home); perr == nil {
			pages.Pages = append(pages.Pages, page)
			p.crawl(ctx, log, &pages, home)
		} else {
			// Link discovery parses the same HTML, so there is
			// nothing more to gather from this domain.
			log.Warn("home page parse failed", "url", home.URL, "error", perr)
			pages.ParseErr = perr
		}
	}

	rec := p.Assembler.Assemble(pages)
	if rec.ErrorKind != "" {
		log.Warn("domain failed", "error_kind", rec.ErrorKind, "attempts", rec.Attempts)
	} else {
		log.Info("domain analyzed",
			"company_name", rec.CompanyName,
			"pages", len(rec.Pages),
			"founders", len(rec.Founders),
		)
	}
	return rec
}

// crawl fetches and processes the pages discovered from the home page,
// appending each success to pages. Failed pages are logged and skipped.
func (p *Pipeline) crawl(ctx context.Context, log logger.Interface, pages *DomainPages, home *FetchResult) {
	for _, link := range p.discover(home) {
		if ctx.Err() != nil {
			break
		}
		res, ferr := p.Fetcher.Fetch(ctx, link)
		if res == nil {
			res = &FetchResult{URL: link, Err: ferr}
		}
		if !res.OK() {
			log.Warn("page fetch failed", "url", link, "error", res.Err)
			continue
		}
		if page, perr := p.processPage(res); perr == nil {
			pages.Pages = append(pages.Pages, page)
		} else {
			log.Warn("page parse failed", "url", res.URL, "error", perr)
			continue
		}
		p.snapshot(log, pages.Domain, res)
	}
}

// processPage runs the per-page stages: parse, normalize, extract.
func (p *Pipeline) processPage(res *FetchResult) (PageResult, error) {
	text, err := p.Parser.Parse(res.URL, res.HTML)
	if err != nil {
		return PageResult{}, err
	}
	page := p.Normalizer.Normalize(text)
	return PageResult{
		Page:     page,
		Entities: p.Names.Extract(page),
		Products: p.Products.Extract(page),
	}, nil
}

func (p *Pipeline) discover(home *FetchResult) []string {
	if p.Discoverer == nil || p.MaxPages <= 1 {
		return nil
	}
	return p.Discoverer.Discover(home.HTML, home.URL, p.MaxPages-1)
}

func (p *Pipeline) snapshot(log logger.Interface, domain string, res *FetchResult) {
	if p.Snapshots == nil {
		return
	}
	if err := p.Snapshots.Snapshot(domain, res.URL, res.HTML); err != nil {
		log.Warn("snapshot failed", "url", res.URL, "error", err)
	}
}

func (p *Pipeline) log() logger.Interface {
	if p.Log != nil {
		return p.Log
	}
	return logger.NewNoOp()
}

// DisplayDomain reduces a raw input URL to the bare domain that keys
// its record: the lowercased host without scheme, www prefix, port,
// or path.
func DisplayDomain(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "https://"), "http://")
		if i := strings.IndexAny(s, "/?#"); i >= 0 {
			s = s[:i]
		}
		return strings.TrimPrefix(s, "www.")
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
