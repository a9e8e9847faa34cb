package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ackhava/homepage/internal/progress"
	"github.com/ackhava/homepage/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static HTML",
	Long: `Renders every page selected by build.include and build.exclude, embeds
expanded, into standalone HTML files with a navigation sidebar.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override build.output_dir")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}
	defer p.Close()

	if p.contentFS == nil {
		return fmt.Errorf("build needs local content; content_url %s cannot be listed", p.cfg.ContentURL)
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = p.cfg.Build.OutputDir
	}

	exporter := &site.Exporter{
		Source:    p.contentFS,
		OutputDir: outputDir,
		Include:   p.cfg.Build.Include,
		Exclude:   p.cfg.Build.Exclude,
		SiteTitle: p.cfg.Terminal.Host,
		IndexPage: p.cfg.IndexPage,
		Loader:    p.loader,
	}

	names, err := exporter.Pages()
	if err != nil {
		return err
	}

	reporter := progress.NewReporter(cmd.ErrOrStderr())
	reporter.Start(len(names))
	done := 0
	exporter.OnPage = func(name string) {
		done++
		reporter.Update(done, name)
	}

	count, err := exporter.Export(cmd.Context())
	reporter.Finish()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated: %s (%d pages)\n", outputDir, count)
	return nil
}
