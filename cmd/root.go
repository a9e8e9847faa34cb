package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "homepage",
	Short: "Personal website server with an in-browser terminal",
	Long: `homepage serves a personal website written in markdown. Pages can embed
other markdown files, and a simulated terminal lets visitors cd, ls and
cat their way around a small in-memory filesystem. The same terminal runs
locally (homepage shell) and over MCP (homepage mcp).`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".homepage.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
