package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ackhava/homepage/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize homepage configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes the config file (.homepage.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (content: %s)\n", cfgFile, cfg.ContentSource())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
