package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nothingbetterhealth/nbh-site/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a site configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes the answers to the config file (.nbh.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
