package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "nbh",
	Short: "Serve and build the Nothing Better Health website",
	Long: `nbh renders the Nothing Better Health marketing site from its catalog of
service areas, providers and services. It can serve the site with live
location filtering and waitlist signups, or export it as static files.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".nbh.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
