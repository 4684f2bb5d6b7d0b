package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SetDefaults registers the built-in defaults on a viper instance.
// Environment variables and config file values override them.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("app.name", d.App.Name)
	v.SetDefault("app.environment", d.App.Environment)
	v.SetDefault("app.debug", d.App.Debug)

	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.encoding", d.Logger.Encoding)
	v.SetDefault("logger.development", d.Logger.Development)

	v.SetDefault("fetch.max_attempts", d.Fetch.MaxAttempts)
	v.SetDefault("fetch.base_delay", d.Fetch.BaseDelay.String())
	v.SetDefault("fetch.max_delay", d.Fetch.MaxDelay.String())
	v.SetDefault("fetch.request_timeout", d.Fetch.RequestTimeout.String())
	v.SetDefault("fetch.user_agent", d.Fetch.UserAgent)
	v.SetDefault("fetch.max_body_bytes", d.Fetch.MaxBodyBytes)
	v.SetDefault("fetch.host_interval", d.Fetch.HostInterval.String())

	v.SetDefault("crawl.max_pages", d.Crawl.MaxPages)
	v.SetDefault("crawl.about_keywords", d.Crawl.AboutKeywords)

	v.SetDefault("normalize.boilerplate_denylist", d.Normalize.BoilerplateDenylist)

	v.SetDefault("extract.engine", d.Extract.Engine)
	v.SetDefault("extract.founder_keywords", d.Extract.FounderKeywords)
	v.SetDefault("extract.product_keywords", d.Extract.ProductKeywords)
	v.SetDefault("extract.min_description_len", d.Extract.MinDescriptionLen)

	v.SetDefault("runner.concurrency", d.Runner.Concurrency)
	v.SetDefault("runner.domain_timeout", d.Runner.DomainTimeout.String())

	v.SetDefault("export.output_dir", d.Export.OutputDir)
	v.SetDefault("export.formats", d.Export.Formats)
	v.SetDefault("export.snapshots", d.Export.Snapshots)
}

// Load reads configuration from the given file (optional), SIFT_*
// environment variables, and defaults, then validates the result.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("SIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
		// Only a file missing from the search path falls back to
		// defaults and env; a present but malformed one must fail.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
