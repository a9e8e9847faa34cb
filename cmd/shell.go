package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ackhava/homepage/internal/history"
	"github.com/ackhava/homepage/internal/terminal"
	"github.com/ackhava/homepage/internal/tui"
	"github.com/ackhava/homepage/internal/vfs"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open the site terminal locally",
	Long:  `Runs the same cd/ls/cat terminal the website offers, full screen in this terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		defer p.Close()

		ctx := cmd.Context()
		fsys := vfs.Default(p.loadResume(ctx))

		width := 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
		md, err := tui.NewMarkdown(width, "")
		if err != nil {
			return fmt.Errorf("creating markdown renderer: %w", err)
		}

		opts := tui.Options{
			User:     p.cfg.Terminal.User,
			Host:     p.cfg.Terminal.Host,
			Markdown: md,
		}

		database, store, err := p.openHistory()
		if err != nil {
			return err
		}
		if database != nil {
			defer database.Close()
			rec, err := store.Begin(ctx, history.Session{Transport: history.TransportTUI}, p.logger.Logger)
			if err != nil {
				return err
			}
			defer rec.Close()
			opts.OnSubmit = terminal.CommandHook(rec.Record)
		}

		return tui.Run(tui.NewModel(fsys, opts))
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
