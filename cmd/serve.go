package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ackhava/homepage/internal/history"
	"github.com/ackhava/homepage/internal/server"
	"github.com/ackhava/homepage/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website server",
	Long:  `Serves the site shell, rendered pages, raw content files and the terminal websocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		defer p.Close()

		database, store, err := p.openHistory()
		if err != nil {
			return err
		}
		if database != nil {
			defer database.Close()
		}

		port := p.cfg.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv := server.New(server.Config{
			Port:     port,
			AllowAll: p.cfg.AllowAllOrigins,
		}, database, p.logger.Logger)

		st, err := site.New(site.Options{
			Title:      p.cfg.Terminal.Host,
			IndexPage:  p.cfg.IndexPage,
			User:       p.cfg.Terminal.User,
			Host:       p.cfg.Terminal.Host,
			ResumeFile: p.cfg.Terminal.ResumeFile,
			ContentFS:  p.contentFS,
		}, p.fetcher, p.md, p.loader, store, p.logger.Logger)
		if err != nil {
			return fmt.Errorf("creating site: %w", err)
		}
		st.RegisterRoutes(srv.Router())
		st.RegisterStreams(srv.StreamRouter())
		if store != nil {
			history.RegisterRoutes(srv.Router(), store)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			p.logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				p.logger.Error("shutdown failed", "error", err)
			}
		}()

		p.logger.Info("homepage starting",
			"version", Version,
			"port", port,
			"content", p.cfg.ContentSource(),
			"history", p.cfg.History.Enabled,
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
