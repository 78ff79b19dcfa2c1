// Package cli wires the portfolio commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio.dev/internal/config"
)

// ConfigLoader returns the application configuration
type ConfigLoader func() (*config.Config, error)

// NewRootCommand creates the root command
func NewRootCommand(load ConfigLoader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Serve and inspect the portfolio site",
		Long: `A personal portfolio site: server-rendered pages, a JSON API
and terminal tools over the same project catalog.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `portfolio serve` when no subcommand is provided.
			return (&ServeCommand{load: load}).Run(cmd, args)
		},
	}
	rootCmd.Flags().String("addr", "", "Listen address (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(NewServeCommand(load))
	rootCmd.AddCommand(NewProjectsCommand(load))
	rootCmd.AddCommand(NewExportCommand(load))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand(config.Load)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
