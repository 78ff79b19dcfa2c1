package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"folio.dev/internal/catalog"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
	"folio.dev/internal/termview"
)

// ProjectsCommand handles the projects command
type ProjectsCommand struct {
	load ConfigLoader
}

// NewProjectsCommand creates a new projects command
func NewProjectsCommand(load ConfigLoader) *cobra.Command {
	cmd := &ProjectsCommand{load: load}

	cobraCmd := &cobra.Command{
		Use:   "projects",
		Short: "Search the project catalog from the terminal",
		Long: `Filters the catalog exactly like the projects page: the query matches titles,
descriptions and tech tags ignoring case, and keywords in descriptions are highlighted.`,
		Example: `  # Everything built with Kafka
  portfolio projects --query kafka

  # API projects with the dispatch description in full
  portfolio projects --category API --expand realtime-dispatch`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("query", "q", "", "Text to search for")
	cobraCmd.Flags().StringP("category", "c", "", "Category code or label (default all)")
	cobraCmd.Flags().StringSliceP("expand", "e", nil, "Project IDs whose description is shown in full")
	cobraCmd.Flags().Bool("plain", false, "Disable colors and emphasis")

	return cobraCmd
}

// Run executes the projects command
func (c *ProjectsCommand) Run(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	categoryFlag, _ := cmd.Flags().GetString("category")
	expand, _ := cmd.Flags().GetStringSlice("expand")
	plain, _ := cmd.Flags().GetBool("plain")

	category, err := models.ParseCategoryFilter(categoryFlag)
	if err != nil {
		return err
	}

	cfg, err := c.load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc := services.NewProjectService(cfg.Catalog, catalog.DefaultKeywords, cfg.DescriptionLimit)
	cards := svc.Cards(
		catalog.SearchQuery{Text: query, Category: category},
		catalog.ParseExpansionState(strings.Join(expand, ",")),
	)

	styles := termview.DefaultStyles()
	if plain {
		styles = termview.PlainStyles()
	}
	return termview.NewPrinter(cmd.OutOrStdout(), styles).Print(cards)
}
