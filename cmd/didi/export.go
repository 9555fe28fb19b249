// ABOUTME: Export command for backing up the diary.
// ABOUTME: Writes a JSON document or a directory of markdown files.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/harper/didi/internal/db"
	"github.com/harper/didi/internal/export"
	"github.com/harper/didi/internal/models"
	"github.com/harper/didi/internal/ui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:         "export",
	Short:       "Export entries",
	Long:        `Export every entry, hidden ones included, to JSON or markdown with YAML front matter.`,
	Args:        cobra.NoArgs,
	Annotations: needsDB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		entries, err := db.ListEntries(dbConn)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		switch format {
		case "json":
			return exportJSON(cmd.OutOrStdout(), entries, outputPath)
		case "md":
			return exportMarkdown(cmd.OutOrStdout(), entries, outputPath)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

func exportJSON(stdout io.Writer, entries []*models.Entry, outputPath string) error {
	if outputPath == "" || outputPath == "-" {
		return export.WriteJSON(stdout, entries, time.Now())
	}

	f, err := os.Create(outputPath) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := export.WriteJSON(f, entries, time.Now()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintln(stdout, ui.Success(fmt.Sprintf("Exported %d entries to %s", len(entries), outputPath)))
	return nil
}

func exportMarkdown(stdout io.Writer, entries []*models.Entry, outputDir string) error {
	if outputDir == "" {
		outputDir = "export"
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	for _, e := range entries {
		data, err := export.MarshalMarkdown(e)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(outputDir, export.MarkdownFilename(e)), data, 0644); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, ui.Success(fmt.Sprintf("Exported %d entries to %s", len(entries), outputDir)))
	return nil
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|md)")
	exportCmd.Flags().StringP("output", "o", "", "output path")
	rootCmd.AddCommand(exportCmd)
}
