// Package commands implements the CLI commands for coursepeek.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "coursepeek",
	Short: "Course metadata extractor for e-learning platforms",
	Long: `Coursepeek extracts normalized course metadata (title, organization,
description, programme, instructors, duration, languages) from the pages
of supported e-learning platforms.

Examples:
  # Scrape a single course
  coursepeek scrape "https://www.coursera.org/learn/learning-how-to-learn"

  # Scrape several courses and write YAML
  coursepeek scrape --format yaml -o courses.yaml \
      "https://www.fun-mooc.fr/fr/cours/..." \
      "https://www.udemy.com/course/..."

  # Force a platform instead of detecting it from the URL
  coursepeek scrape --platform coursera "https://www.coursera.org/learn/..."

  # Run the HTTP API
  coursepeek serve --addr :3000`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.coursepeek.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".coursepeek")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("COURSEPEEK")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
