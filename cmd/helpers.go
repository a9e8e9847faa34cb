package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/ackhava/homepage/internal/config"
	"github.com/ackhava/homepage/internal/content"
	"github.com/ackhava/homepage/internal/db"
	"github.com/ackhava/homepage/internal/history"
	"github.com/ackhava/homepage/internal/logging"
	"github.com/ackhava/homepage/internal/markdown"
	"github.com/ackhava/homepage/internal/page"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `homepage init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) (*logging.Logger, error) {
	logger, err := logging.New(cfg.LoggingOptions(verbose))
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}
	slog.SetDefault(logger.Logger)
	return logger, nil
}

// newFetcher picks the content source. The returned fs.FS is nil for remote
// content.
func newFetcher(cfg *config.Config) (content.Fetcher, fs.FS, error) {
	switch {
	case cfg.ContentURL != "":
		f, err := content.NewHTTPFetcher(cfg.ContentURL, nil)
		if err != nil {
			return nil, nil, err
		}
		return f, nil, nil
	case cfg.ContentDir != "":
		f, err := content.NewDiskFetcher(cfg.ContentDir)
		if err != nil {
			return nil, nil, err
		}
		return f, f.FS(), nil
	default:
		f := content.NewDirFetcher(content.DefaultSite())
		return f, f.FS(), nil
	}
}

// pipeline bundles what every command needs to read and render pages.
type pipeline struct {
	cfg       *config.Config
	logger    *logging.Logger
	fetcher   content.Fetcher
	contentFS fs.FS
	md        *markdown.Renderer
	loader    *page.Loader
}

func newPipeline() (*pipeline, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := setupLogging(cfg)
	if err != nil {
		return nil, err
	}
	fetcher, contentFS, err := newFetcher(cfg)
	if err != nil {
		logger.Close()
		return nil, err
	}

	md := markdown.NewRenderer()
	loader := page.NewLoader(fetcher, md,
		page.WithEmbedPasses(cfg.EmbedPasses),
		page.WithLogger(logger.Logger),
	)
	return &pipeline{
		cfg:       cfg,
		logger:    logger,
		fetcher:   fetcher,
		contentFS: contentFS,
		md:        md,
		loader:    loader,
	}, nil
}

func (p *pipeline) Close() error {
	return p.logger.Close()
}

// loadResume fetches the file served as ~/resume.md. A failed fetch leaves
// the file empty.
func (p *pipeline) loadResume(ctx context.Context) string {
	data, err := p.fetcher.Fetch(ctx, p.cfg.Terminal.ResumeFile)
	if err != nil {
		p.logger.Warn("could not load resume", "file", p.cfg.Terminal.ResumeFile, "error", err)
		return ""
	}
	return string(data)
}

// openHistory opens the command history store when enabled. Both return
// values are nil when history is off.
func (p *pipeline) openHistory() (*db.DB, *history.Store, error) {
	if !p.cfg.History.Enabled {
		return nil, nil, nil
	}
	database, err := db.Open(p.cfg.History.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}
	return database, history.NewStore(database), nil
}
