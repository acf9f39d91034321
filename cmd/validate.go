package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nothingbetterhealth/nbh-site/internal/assets"
	"github.com/nothingbetterhealth/nbh-site/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config, catalog and content files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if err := assets.ValidatePatterns(cfg.AssetInclude); err != nil {
			return fmt.Errorf("asset_include: %w", err)
		}
		if err := assets.ValidatePatterns(cfg.AssetExclude); err != nil {
			return fmt.Errorf("asset_exclude: %w", err)
		}

		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		if err := cat.Validate(); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}

		store, err := loadContent(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("OK: %d states, %d providers, %d services, %d content pages\n",
			len(cat.States()), len(cat.Providers()), len(cat.Services), len(store.AllPages()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
