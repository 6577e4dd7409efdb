// Package cmd implements the command-line interface for the page insights
// service. It provides the root command and subcommands for serving the
// HTTP API and inspecting stored records.
package cmd

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/pageinsights/cmd/httpd"
	"github.com/jonesrussell/pageinsights/cmd/pages"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// rootCmd represents the root command for the pageinsights CLI.
	rootCmd = &cobra.Command{
		Use:   "pageinsights",
		Short: "Entity page scraping and insights service",
		Long:  `A service that scrapes entity pages into structured records and serves them through a cached, paginated query API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or /etc/pageinsights/config.yaml)",
	)

	rootCmd.AddCommand(httpd.Command(&cfgFile))
	rootCmd.AddCommand(pages.Command(&cfgFile))
}
