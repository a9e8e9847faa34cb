package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.EmbedPasses != 3 {
		t.Errorf("expected default embed_passes 3, got %d", cfg.EmbedPasses)
	}
	if cfg.Terminal.User != "reader" || cfg.Terminal.Host != "ackhava.dev" {
		t.Errorf("unexpected terminal identity %s@%s", cfg.Terminal.User, cfg.Terminal.Host)
	}
	if cfg.IndexPage != "index" {
		t.Errorf("expected default index_page %q, got %q", "index", cfg.IndexPage)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.homepage.yml")

	original := DefaultConfig()
	original.Port = 9000
	original.ContentDir = "site"
	original.EmbedPasses = 5
	original.Terminal.User = "guest"
	original.History.Enabled = true
	original.Build.Include = []string{"**/*.md", "notes/*.md"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.ContentDir != original.ContentDir {
		t.Errorf("content_dir: got %q, want %q", loaded.ContentDir, original.ContentDir)
	}
	if loaded.EmbedPasses != original.EmbedPasses {
		t.Errorf("embed_passes: got %d, want %d", loaded.EmbedPasses, original.EmbedPasses)
	}
	if loaded.Terminal.User != "guest" {
		t.Errorf("terminal.user: got %q", loaded.Terminal.User)
	}
	if !loaded.History.Enabled {
		t.Error("history.enabled did not round-trip")
	}
	if len(loaded.Build.Include) != len(original.Build.Include) {
		t.Errorf("include length: got %d, want %d", len(loaded.Build.Include), len(original.Build.Include))
	}
	for i, v := range loaded.Build.Include {
		if v != original.Build.Include[i] {
			t.Errorf("include[%d]: got %q, want %q", i, v, original.Build.Include[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("HOMEPAGE_PORT", "9191")
	t.Setenv("HOMEPAGE_TERMINAL__HOST", "example.org")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9191 {
		t.Errorf("env override failed: got %d, want 9191", loaded.Port)
	}
	if loaded.Terminal.Host != "example.org" {
		t.Errorf("nested env override failed: got %q", loaded.Terminal.Host)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"both sources", func(c *Config) { c.ContentDir = "site"; c.ContentURL = "https://example.org" }, true},
		{"bad url", func(c *Config) { c.ContentURL = "ftp://example.org" }, true},
		{"good url", func(c *Config) { c.ContentURL = "https://example.org/site/" }, false},
		{"empty index", func(c *Config) { c.IndexPage = "" }, true},
		{"hash index", func(c *Config) { c.IndexPage = "#terminal" }, true},
		{"zero passes", func(c *Config) { c.EmbedPasses = 0 }, true},
		{"empty user", func(c *Config) { c.Terminal.User = "" }, true},
		{"history without db", func(c *Config) { c.History.Enabled = true; c.History.DBPath = "" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"empty build dir", func(c *Config) { c.Build.OutputDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestContentSource(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ContentSource(); got != "embedded default site" {
		t.Errorf("ContentSource() = %q", got)
	}
	cfg.ContentDir = "site"
	if got := cfg.ContentSource(); got != "site" {
		t.Errorf("ContentSource() = %q", got)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"HOMEPAGE_PORT":             "port",
		"HOMEPAGE_EMBED_PASSES":     "embed_passes",
		"HOMEPAGE_HISTORY__DB_PATH": "history.db_path",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.md", []string{"**/*.md"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
