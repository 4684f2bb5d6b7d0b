// Package fetch implements the Fetcher stage: URL normalization, polite
// HTTP retrieval, and retrying of transient failures with exponential
// backoff. All failure detail is classified into typed errors so one bad
// page never aborts a batch.
package fetch

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"

	"github.com/EmmanuelEzenwere/SequelSift/core"
	"github.com/EmmanuelEzenwere/SequelSift/logger"
)

const (
	defaultMaxAttempts  = 3
	defaultBaseDelay    = 2 * time.Second
	defaultMaxDelay     = 30 * time.Second
	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 5 << 20
	defaultUserAgent    = "Mozilla/5.0 (compatible; SequelSift/1.0)"
)

// Config controls fetch behavior. Zero values fall back to defaults.
type Config struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int
	// BaseDelay seeds the backoff schedule: delay doubles per attempt.
	BaseDelay time.Duration
	// MaxDelay caps any single backoff sleep.
	MaxDelay       time.Duration
	RequestTimeout time.Duration
	UserAgent      string
	MaxBodyBytes   int64
	// HostInterval spaces out requests to the same host. Zero disables
	// politeness waiting.
	HostInterval time.Duration
}

// Fetcher fetches web pages over HTTP with retry and per-host politeness.
type Fetcher struct {
	cfg    Config
	client *http.Client
	log    logger.Interface

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates a Fetcher. A nil logger disables logging.
func New(cfg Config, log logger.Interface) *Fetcher {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}
	if cfg.MaxDelay < cfg.BaseDelay {
		cfg.MaxDelay = defaultMaxDelay
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if log == nil {
		log = logger.NewNoOp()
	}
	return &Fetcher{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.RequestTimeout},
		log:      log,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Fetch retrieves the HTML content of rawURL. The returned FetchResult is
// always non-nil; on failure it carries the attempt count and the last
// status code alongside the typed error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	res := &core.FetchResult{URL: rawURL}

	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		ferr := &Error{Kind: core.KindInvalidURL, URL: rawURL, Err: err}
		res.Err = ferr
		return res, ferr
	}
	res.URL = normalized

	var ferr *Error
	for attempt := 1; attempt <= f.cfg.MaxAttempts; attempt++ {
		res.Attempts = attempt

		if err := f.waitHost(ctx, normalized); err != nil {
			ferr = classify(normalized, 0, attempt, err)
			break
		}

		status, html, err := f.do(ctx, normalized)
		if status > 0 {
			res.StatusCode = status
		}
		if err == nil {
			res.HTML = html
			f.log.Debug("fetched", "url", normalized, "status", status, "attempt", attempt)
			return res, nil
		}

		ferr = classify(normalized, status, attempt, err)
		if !ferr.Retryable() || attempt == f.cfg.MaxAttempts {
			break
		}

		delay := f.delayFor(attempt)
		f.log.Debug("retrying fetch",
			"url", normalized, "kind", string(ferr.Kind), "attempt", attempt, "delay", delay)
		if err := f.sleep(ctx, delay); err != nil {
			ferr = classify(normalized, 0, attempt, err)
			break
		}
	}

	res.Err = ferr
	f.log.Warn("fetch failed",
		"url", normalized, "kind", string(ferr.Kind), "attempts", res.Attempts)
	return res, ferr
}

// do performs one HTTP GET attempt.
func (f *Fetcher) do(ctx context.Context, urlStr string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return 0, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	// Decode to UTF-8 based on headers and meta tags; pages that lie
	// about their charset still come through as best-effort text.
	reader, err := charset.NewReader(io.LimitReader(resp.Body, f.cfg.MaxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("detecting charset: %w", err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("reading response body: %w", err)
	}
	return resp.StatusCode, string(body), nil
}

// delayFor returns the backoff to sleep after the given attempt number:
// BaseDelay * 2^(attempt-1), capped at MaxDelay.
func (f *Fetcher) delayFor(attempt int) time.Duration {
	d := time.Duration(float64(f.cfg.BaseDelay) * math.Pow(2, float64(attempt-1)))
	if d > f.cfg.MaxDelay || d <= 0 {
		d = f.cfg.MaxDelay
	}
	return d
}

// sleep waits for d unless the context ends first.
func (f *Fetcher) sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// waitHost blocks until the per-host politeness interval allows another
// request to the URL's host.
func (f *Fetcher) waitHost(ctx context.Context, urlStr string) error {
	if f.cfg.HostInterval <= 0 {
		return nil
	}
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil
	}

	f.mu.Lock()
	lim, ok := f.limiters[parsed.Host]
	if !ok {
		lim = rate.NewLimiter(rate.Every(f.cfg.HostInterval), 1)
		f.limiters[parsed.Host] = lim
	}
	f.mu.Unlock()

	return lim.Wait(ctx)
}
