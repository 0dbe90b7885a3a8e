package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/logger"
	"github.com/coursepeek/coursepeek/internal/server"
	"github.com/coursepeek/coursepeek/pkg/adapter"
	_ "github.com/coursepeek/coursepeek/pkg/platforms"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scraping HTTP API",
	Long: `Start an HTTP server exposing the scraper.

POST /api/scrape/{platform} with a JSON body {"url": "..."} returns the
extracted course record. GET /api/platforms lists the supported
platforms.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.String("addr", ":3000", "listen address")
	flags.Duration("request-timeout", 2*time.Minute, "per-request scrape timeout")
	flags.String("user-agent", "", "override the browser user agent")

	_ = viper.BindPFlag("addr", flags.Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	addr := viper.GetString("addr")
	timeout, _ := cmd.Flags().GetDuration("request-timeout")
	userAgent, _ := cmd.Flags().GetString("user-agent")

	browserCfg := browser.DefaultConfig()
	if userAgent != "" {
		browserCfg.UserAgent = userAgent
	}
	scraper := adapter.NewScraper(browserCfg)
	defer scraper.Close()

	srv := server.New(scraper, server.WithTimeout(timeout))
	logInfo("Serving %d platforms on %s", len(adapter.Platforms()), addr)
	return srv.ListenAndServe(ctx, addr)
}
