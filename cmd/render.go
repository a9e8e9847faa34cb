package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ackhava/homepage/internal/page"
)

var renderCmd = &cobra.Command{
	Use:   "render [page]",
	Short: "Render one page to stdout",
	Long: `Renders a page the way the server does, embeds included, and prints the
HTML fragment. With no argument the index page is rendered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		defer p.Close()

		route := page.Router{Index: p.cfg.IndexPage}.Parse("")
		if len(args) == 1 {
			route = page.Router{Index: p.cfg.IndexPage}.Parse("#" + args[0])
		}
		if route.View == page.ViewTerminal {
			return fmt.Errorf("%s is the terminal, not a page", page.TerminalHash)
		}

		pg, err := p.loader.Load(cmd.Context(), route.Page)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), pg.HTML)
		if pg.Status != page.StatusOK {
			return fmt.Errorf("page %s: %s", route.Page, pg.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
