package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ackhava/homepage/internal/history"
	mcpserver "github.com/ackhava/homepage/internal/mcp"
	"github.com/ackhava/homepage/internal/vfs"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio exposing the site terminal and page renderer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		defer p.Close()

		ctx := cmd.Context()
		fsys := vfs.Default(p.loadResume(ctx))

		var recorder mcpserver.Recorder
		database, store, err := p.openHistory()
		if err != nil {
			return err
		}
		if database != nil {
			defer database.Close()
			rec, err := store.Begin(ctx, history.Session{Transport: history.TransportMCP}, p.logger.Logger)
			if err != nil {
				return err
			}
			defer rec.Close()
			recorder = rec
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		p.logger.Info("homepage MCP server started on stdio", "content", p.cfg.ContentSource())

		srv := mcpserver.NewServer(fsys, p.loader, recorder)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
