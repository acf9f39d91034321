package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
	"github.com/nothingbetterhealth/nbh-site/internal/config"
	"github.com/nothingbetterhealth/nbh-site/internal/content"
	"github.com/nothingbetterhealth/nbh-site/internal/logging"
	"github.com/nothingbetterhealth/nbh-site/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `nbh init` to create a config file", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// initLogger installs the global logger described by cfg.
func initLogger(cfg *config.Config) zerolog.Logger {
	return logging.Init(cfg.LogLevel, string(cfg.LogFormat))
}

// loadCatalog reads the configured catalog, or the built-in one when no
// file is set.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

// loadContent reads the optional CMS content export.
func loadContent(cfg *config.Config) (*content.Store, error) {
	if cfg.ContentFile == "" {
		return content.Empty(), nil
	}
	store, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return store, nil
}

// buildSite assembles the page composer from cfg.
func buildSite(cfg *config.Config) (*site.Site, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	// Pages tolerate dangling references; `nbh validate` is the strict check.
	if err := cat.Validate(); err != nil {
		log.Warn().Err(err).Msg("catalog has problems")
	}
	if cfg.SiteName != "" {
		cat.Site.Name = cfg.SiteName
	}

	store, err := loadContent(cfg)
	if err != nil {
		return nil, err
	}

	return site.New(cat, store, site.Options{
		BaseURL:      cfg.BaseURL,
		DismissDelay: cfg.AlertDismissDelay,
	})
}
