package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ackhava/homepage/internal/logging"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "HOMEPAGE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (HOMEPAGE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// HOMEPAGE_EMBED_PASSES -> embed_passes, HOMEPAGE_TERMINAL__USER -> terminal.user
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogFormats = map[LogFormat]bool{
	LogText: true,
	LogJSON: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}

	if c.ContentDir != "" && c.ContentURL != "" {
		return fmt.Errorf("content_dir and content_url are mutually exclusive")
	}
	if c.ContentURL != "" {
		u, err := url.Parse(c.ContentURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid content_url %q: must be an http(s) URL", c.ContentURL)
		}
	}

	if c.IndexPage == "" {
		return fmt.Errorf("index_page is required")
	}
	if strings.ContainsAny(c.IndexPage, "#/") {
		return fmt.Errorf("invalid index_page %q", c.IndexPage)
	}

	if c.EmbedPasses < 1 {
		return fmt.Errorf("embed_passes must be at least 1")
	}

	if c.Terminal.User == "" || c.Terminal.Host == "" {
		return fmt.Errorf("terminal.user and terminal.host are required")
	}

	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("history.db_path is required when history is enabled")
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	if c.Log.Format != "" && !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be one of text, json", c.Log.Format)
	}

	if c.Build.OutputDir == "" {
		return fmt.Errorf("build.output_dir is required")
	}

	return nil
}

// ContentSource describes where pages are read from, for log output.
func (c *Config) ContentSource() string {
	switch {
	case c.ContentURL != "":
		return c.ContentURL
	case c.ContentDir != "":
		return c.ContentDir
	default:
		return "embedded default site"
	}
}

// LoggingOptions converts the log section to logging options.
func (c *Config) LoggingOptions(verbose bool) logging.Options {
	return logging.Options{
		Level:   c.Log.Level,
		Format:  string(c.Log.Format),
		File:    c.Log.File,
		Journal: c.Log.Journal,
		Verbose: verbose,
	}
}
