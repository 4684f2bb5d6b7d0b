// Package config holds the typed configuration for SequelSift and its
// validation rules. Values come from defaults, an optional config file,
// and environment variables, resolved through viper in Load.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the root configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Fetch     FetchConfig     `mapstructure:"fetch"`
	Crawl     CrawlConfig     `mapstructure:"crawl"`
	Normalize NormalizeConfig `mapstructure:"normalize"`
	Extract   ExtractConfig   `mapstructure:"extract"`
	Runner    RunnerConfig    `mapstructure:"runner"`
	Export    ExportConfig    `mapstructure:"export"`
}

// AppConfig identifies the application instance.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// LoggerConfig controls log output.
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Encoding    string `mapstructure:"encoding"`
	Development bool   `mapstructure:"development"`
}

// FetchConfig controls the HTTP fetcher and its retry policy.
type FetchConfig struct {
	// MaxAttempts is the total number of tries per URL, including the first.
	MaxAttempts int `mapstructure:"max_attempts"`
	// BaseDelay seeds the exponential backoff schedule.
	BaseDelay time.Duration `mapstructure:"base_delay"`
	// MaxDelay caps any single backoff sleep.
	MaxDelay       time.Duration `mapstructure:"max_delay"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
	// HostInterval is the politeness gap between requests to one host.
	HostInterval time.Duration `mapstructure:"host_interval"`
}

// CrawlConfig controls same-domain page discovery.
type CrawlConfig struct {
	// MaxPages caps pages fetched per domain, home page included.
	MaxPages      int      `mapstructure:"max_pages"`
	AboutKeywords []string `mapstructure:"about_keywords"`
}

// NormalizeConfig controls text cleanup.
type NormalizeConfig struct {
	// BoilerplateDenylist drops any sentence or list item containing one
	// of these phrases, case-insensitively.
	BoilerplateDenylist []string `mapstructure:"boilerplate_denylist"`
}

// ExtractConfig controls entity and product extraction.
type ExtractConfig struct {
	// Engine selects the name extractor: "rules" or "prose".
	Engine          string   `mapstructure:"engine"`
	FounderKeywords []string `mapstructure:"founder_keywords"`
	ProductKeywords []string `mapstructure:"product_keywords"`
	// MinDescriptionLen is the minimum rune count for an about/body block
	// to qualify as a company description.
	MinDescriptionLen int `mapstructure:"min_description_len"`
}

// RunnerConfig controls the batch runner.
type RunnerConfig struct {
	Concurrency   int           `mapstructure:"concurrency"`
	DomainTimeout time.Duration `mapstructure:"domain_timeout"`
}

// ExportConfig controls where and how results are written.
type ExportConfig struct {
	OutputDir string   `mapstructure:"output_dir"`
	Formats   []string `mapstructure:"formats"`
	Snapshots bool     `mapstructure:"snapshots"`
}

// knownFormats are the renderers analyze can write.
var knownFormats = map[string]bool{
	"json": true, "csv": true, "markdown": true, "pdf": true, "xlsx": true,
}

// knownEngines are the name extractor implementations.
var knownEngines = map[string]bool{
	"rules": true, "prose": true,
}

// Default returns the built-in configuration. It is valid on its own so
// the library is usable without any config file.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "sift",
			Environment: "production",
		},
		Logger: LoggerConfig{
			Level:    "info",
			Encoding: "console",
		},
		Fetch: FetchConfig{
			MaxAttempts:    3,
			BaseDelay:      2 * time.Second,
			MaxDelay:       30 * time.Second,
			RequestTimeout: 10 * time.Second,
			UserAgent:      "Mozilla/5.0 (compatible; SequelSift/1.0)",
			MaxBodyBytes:   5 << 20,
			HostInterval:   500 * time.Millisecond,
		},
		Crawl: CrawlConfig{
			MaxPages:      3,
			AboutKeywords: []string{"about", "team", "company", "our-story", "who-we-are"},
		},
		Normalize: NormalizeConfig{
			BoilerplateDenylist: []string{
				"cookie", "cookies", "privacy policy", "terms of service",
				"terms and conditions", "all rights reserved", "copyright",
				"subscribe", "newsletter", "sign up", "log in", "follow us",
			},
		},
		Extract: ExtractConfig{
			Engine: "rules",
			FounderKeywords: []string{
				"founder", "co-founder", "founders", "ceo", "chief executive",
				"founded by", "started by", "created by",
			},
			ProductKeywords: []string{
				"our product", "our products", "we offer", "we provide",
				"we build", "our platform", "our solution", "features include",
			},
			MinDescriptionLen: 40,
		},
		Runner: RunnerConfig{
			Concurrency:   4,
			DomainTimeout: 60 * time.Second,
		},
		Export: ExportConfig{
			OutputDir: "out",
			Formats:   []string{"json"},
		},
	}
}

// Validate checks the configuration and returns the first problem found.
// A malformed configuration is the one fatal condition in the pipeline,
// surfaced before any domain is processed.
func (c *Config) Validate() error {
	if c.Fetch.MaxAttempts < 1 {
		return errors.New("fetch.max_attempts must be at least 1")
	}
	if c.Fetch.BaseDelay <= 0 {
		return errors.New("fetch.base_delay must be positive")
	}
	if c.Fetch.MaxDelay < c.Fetch.BaseDelay {
		return fmt.Errorf("fetch.max_delay %s must not be below fetch.base_delay %s",
			c.Fetch.MaxDelay, c.Fetch.BaseDelay)
	}
	if c.Fetch.RequestTimeout <= 0 {
		return errors.New("fetch.request_timeout must be positive")
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		return errors.New("fetch.max_body_bytes must be positive")
	}
	if c.Fetch.HostInterval < 0 {
		return errors.New("fetch.host_interval must not be negative")
	}
	if c.Crawl.MaxPages < 1 {
		return errors.New("crawl.max_pages must be at least 1")
	}
	if !knownEngines[c.Extract.Engine] {
		return fmt.Errorf("extract.engine %q is not known (rules, prose)", c.Extract.Engine)
	}
	if c.Extract.MinDescriptionLen < 0 {
		return errors.New("extract.min_description_len must not be negative")
	}
	if c.Runner.Concurrency < 1 {
		return errors.New("runner.concurrency must be at least 1")
	}
	if c.Runner.DomainTimeout <= 0 {
		return errors.New("runner.domain_timeout must be positive")
	}
	for _, f := range c.Export.Formats {
		if !knownFormats[f] {
			return fmt.Errorf("export format %q is not known (json, csv, markdown, pdf, xlsx)", f)
		}
	}
	return nil
}
