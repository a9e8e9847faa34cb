package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ackhava/homepage/internal/config"
)

// writeSite creates a content dir with files and a config pointing at it.
func writeSite(t *testing.T, files map[string]string) (cfgPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	content := filepath.Join(dir, "content")
	for name, body := range files {
		path := filepath.Join(content, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.DefaultConfig()
	cfg.ContentDir = content
	cfg.Build.OutputDir = filepath.Join(dir, "public")
	cfg.Log.Level = "error"
	cfgPath = filepath.Join(dir, ".homepage.yml")
	if err := cfg.Save(cfgPath); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return cfgPath, dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "homepage dev\n" {
		t.Errorf("got %q", out)
	}
}

func TestRenderCommand(t *testing.T) {
	cfgPath, _ := writeSite(t, map[string]string{
		"about.md":  "# About\n\n<div class=\"markdown-fetch\" data-render-file=\"bio.md\" data-heading-shift></div>\n",
		"bio.md":    "# Bio\n\nGo developer.",
		"index.md":  "# Home",
		"resume.md": "# Resume",
	})

	out, err := execute(t, "--config", cfgPath, "render", "about")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<h2") || !strings.Contains(out, "Go developer.") {
		t.Errorf("embed not expanded: %s", out)
	}
}

func TestRenderCommandMissingPage(t *testing.T) {
	cfgPath, _ := writeSite(t, map[string]string{"index.md": "# Home"})

	out, err := execute(t, "--config", cfgPath, "render", "nope")
	if err == nil {
		t.Fatal("expected error for a missing page")
	}
	if !strings.Contains(out, "Page not found!") {
		t.Errorf("expected not-found fragment, got %s", out)
	}
}

func TestRenderCommandRejectsTerminal(t *testing.T) {
	cfgPath, _ := writeSite(t, map[string]string{"index.md": "# Home"})
	if _, err := execute(t, "--config", cfgPath, "render", "terminal"); err == nil {
		t.Fatal("expected error for the terminal route")
	}
}

func TestBuildCommand(t *testing.T) {
	cfgPath, dir := writeSite(t, map[string]string{
		"index.md":      "# Home\n\n[Go](#notes/go)",
		"notes/go.md":   "# Go notes",
		"drafts/wip.md": "# WIP",
		"resume.md":     "# Resume",
	})
	t.Setenv("CI", "true")

	out, err := execute(t, "--config", cfgPath, "build")
	if err != nil {
		t.Fatalf("build: %v\n%s", err, out)
	}
	if !strings.Contains(out, "(2 pages)") {
		t.Errorf("unexpected output %q", out)
	}
	for _, f := range []string{"index.html", "notes/go.html", "style.css"} {
		if _, err := os.Stat(filepath.Join(dir, "public", f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "public", "drafts", "wip.html")); err == nil {
		t.Error("excluded draft was exported")
	}
}

func TestLoadResume(t *testing.T) {
	cfgPath, _ := writeSite(t, map[string]string{"resume.md": "# Resume\n\nHi."})
	cfgFile = cfgPath
	t.Cleanup(func() { cfgFile = ".homepage.yml" })

	p, err := newPipeline()
	if err != nil {
		t.Fatalf("newPipeline: %v", err)
	}
	defer p.Close()

	if got := p.loadResume(context.Background()); got != "# Resume\n\nHi." {
		t.Errorf("resume = %q", got)
	}

	p.cfg.Terminal.ResumeFile = "missing.md"
	if got := p.loadResume(context.Background()); got != "" {
		t.Errorf("missing resume = %q, want empty", got)
	}
}

func TestNewFetcherDefaultsToEmbeddedSite(t *testing.T) {
	cfg := config.DefaultConfig()
	f, fsys, err := newFetcher(cfg)
	if err != nil {
		t.Fatalf("newFetcher: %v", err)
	}
	if fsys == nil {
		t.Fatal("expected a browsable content fs")
	}
	if _, err := f.Fetch(context.Background(), "index.md"); err != nil {
		t.Errorf("embedded index.md: %v", err)
	}
}
