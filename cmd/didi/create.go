// ABOUTME: Create command for initializing a new diary database.
// ABOUTME: Refuses to overwrite anything already at the configured path.

package main

import (
	"fmt"

	"github.com/harper/didi/internal/db"
	"github.com/harper/didi/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the diary database",
	Long:  `Create a new, empty diary database at the configured location.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := db.Initialize(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to create diary: %w", err)
		}
		if err := conn.Close(); err != nil {
			return fmt.Errorf("failed to close diary: %w", err)
		}
		logger.Debug("created diary", zap.String("path", cfg.DatabasePath))

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Created database at '%s'", cfg.DatabasePath)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
