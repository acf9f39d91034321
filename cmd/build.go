package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nothingbetterhealth/nbh-site/internal/progress"
	"github.com/nothingbetterhealth/nbh-site/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	Long: `Renders every page to HTML under the output directory, together with the
stylesheet, page script, location index and the public image assets.
The result can be hosted on any static file server.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().Bool("quiet", false, "disable the progress bar")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := initLogger(cfg)

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}

	st, err := buildSite(cfg)
	if err != nil {
		return err
	}

	reporter := progress.NewReporter()
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		reporter = progress.Nop{}
	}

	gen := &site.Generator{
		Site:      st,
		OutputDir: cfg.OutputDir,
		PublicDir: cfg.PublicDir,
		Include:   cfg.AssetInclude,
		Exclude:   cfg.AssetExclude,
		Reporter:  reporter,
	}
	res, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	logger.Info().
		Str("output", cfg.OutputDir).
		Int("pages", res.Pages).
		Int("assets", res.Assets).
		Msg("site built")
	fmt.Printf("Site built: %d pages, %d assets in %s\n", res.Pages, res.Assets, cfg.OutputDir)
	return nil
}
