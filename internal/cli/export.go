package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"folio.dev/internal/models"
)

// ExportCommand handles the export command
type ExportCommand struct {
	load ConfigLoader
}

// NewExportCommand creates a new export command
func NewExportCommand(load ConfigLoader) *cobra.Command {
	cmd := &ExportCommand{load: load}

	return &cobra.Command{
		Use:   "export <output-dir>",
		Short: "Write the site content as JSON files",
		Long:  `Writes projects.json and profile.json, the same documents the API serves, into output-dir.`,
		Args:  cobra.ExactArgs(1),
		RunE:  cmd.Run,
	}
}

// Run executes the export command
func (c *ExportCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := c.load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	outputDir := args[0]
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name string
		data interface{}
	}{
		{"projects.json", models.ProjectList{Projects: cfg.Catalog.All()}},
		{"profile.json", cfg.Profile},
	}

	for _, f := range files {
		data, err := json.MarshalIndent(f.data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", f.name, err)
		}

		path := filepath.Join(outputDir, f.name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Done!")
	return nil
}
