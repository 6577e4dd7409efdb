// Package pages implements CLI commands for inspecting stored entity
// pages.
package pages

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/pageinsights/internal/config"
	"github.com/jonesrussell/pageinsights/internal/domain"
	"github.com/jonesrussell/pageinsights/internal/logger"
	"github.com/jonesrussell/pageinsights/internal/storage"
)

const defaultListLimit = 50

// Command returns the pages subcommand.
func Command(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Inspect stored entity pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(listCommand(cfgFile))
	return cmd
}

// listCommand returns the pages list subcommand.
func listCommand(cfgFile *string) *cobra.Command {
	var (
		name     string
		industry string
		limit    int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored entity pages in a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), *cfgFile, domain.PageFilter{
				Name:     name,
				Industry: industry,
			}, limit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by display name substring")
	cmd.Flags().StringVar(&industry, "industry", "", "filter by industry substring")
	cmd.Flags().Int64Var(&limit, "limit", defaultListLimit, "maximum rows to display")
	return cmd
}

// runList fetches matching pages from the store and renders them.
func runList(ctx context.Context, cfgFile string, filter domain.PageFilter, limit int64) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := storage.Connect(ctx, cfg.Mongo, logger.NewNoOp())
	if err != nil {
		return fmt.Errorf("connect store: %w", err)
	}
	defer func() { _ = store.Close(ctx) }()

	pages, err := store.Pages().List(ctx, filter, 0, limit)
	if err != nil {
		return fmt.Errorf("list pages: %w", err)
	}

	total, err := store.Pages().Count(ctx, filter)
	if err != nil {
		return fmt.Errorf("count pages: %w", err)
	}

	renderTable(pages)
	fmt.Printf("%d of %d pages\n", len(pages), total)
	return nil
}

// renderTable formats and displays the pages in a table.
func renderTable(pages []domain.Page) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Key", "Name", "Industry", "Followers", "Employees", "Scraped At"})
	for i := range pages {
		page := &pages[i]
		t.AppendRow(table.Row{
			page.PageID,
			page.PageName,
			page.Industry,
			page.FollowerCount,
			page.EmployeeCount,
			page.ScrapedAt.Format(time.RFC3339),
		})
	}

	t.Render()
}
