package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/logger"
	"github.com/coursepeek/coursepeek/internal/output"
	"github.com/coursepeek/coursepeek/pkg/adapter"
	"github.com/coursepeek/coursepeek/pkg/course"
	_ "github.com/coursepeek/coursepeek/pkg/platforms"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [urls...]",
	Short: "Extract course metadata from course page URLs",
	Long: `Scrape course pages and print the extracted records.

The platform is detected from each URL's hostname; use --platform to
force one. Failed URLs are reported on stderr and skipped, so a batch
continues past individual dead links.

Examples:
  # Single course to stdout
  coursepeek scrape "https://www.coursera.org/learn/learning-how-to-learn"

  # Batch to a JSONL file
  coursepeek scrape --format jsonl -o records.jsonl \
      "https://www.edx.org/learn/..." "https://www.udemy.com/course/..."`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	flags := scrapeCmd.Flags()
	flags.StringP("platform", "p", "", "platform name (default: detect from URL host)")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "output format: json, jsonl, yaml")
	flags.Duration("timeout", 2*time.Minute, "per-course scrape timeout")
	flags.String("user-agent", "", "override the browser user agent")
}

func runScrape(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	platform, _ := cmd.Flags().GetString("platform")
	format, _ := cmd.Flags().GetString("format")
	outputFile, _ := cmd.Flags().GetString("output")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	userAgent, _ := cmd.Flags().GetString("user-agent")

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	writer, err := output.NewWriter(out, output.Format(format))
	if err != nil {
		return err
	}
	defer writer.Close()

	browserCfg := browser.DefaultConfig()
	if userAgent != "" {
		browserCfg.UserAgent = userAgent
	}
	scraper := adapter.NewScraper(browserCfg)
	defer scraper.Close()

	var failed int
	for _, url := range args {
		if ctx.Err() != nil {
			break
		}
		logInfo("Scraping %s", url)

		scrapeCtx, cancelScrape := context.WithTimeout(ctx, timeout)
		rec, err := scrapeOne(scrapeCtx, scraper, platform, url)
		cancelScrape()
		if err != nil {
			logError("%s: %v", url, err)
			failed++
			continue
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		logInfo("%d of %d URLs failed", failed, len(args))
	}
	return nil
}

func scrapeOne(ctx context.Context, scraper *adapter.Scraper, platform, url string) (*course.Record, error) {
	if platform != "" {
		return scraper.Scrape(ctx, platform, url)
	}
	return scraper.ScrapeURL(ctx, url)
}
