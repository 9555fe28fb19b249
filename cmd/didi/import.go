// ABOUTME: Import command for restoring entries from a backup.
// ABOUTME: Accepts a JSON export, a markdown file, or a directory of markdown files.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/didi/internal/db"
	"github.com/harper/didi/internal/export"
	"github.com/harper/didi/internal/models"
	"github.com/harper/didi/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import entries",
	Long: `Import entries from a JSON export or markdown files. Exported entries keep
their original date and hash; markdown files without front matter become new entries.`,
	Args:        cobra.ExactArgs(1),
	Annotations: needsDB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat path: %w", err)
		}

		var entries []*models.Entry
		switch {
		case info.IsDir():
			entries, err = readMarkdownDir(path)
		case strings.HasSuffix(path, ".json"):
			entries, err = readJSONFile(path)
		default:
			var e *models.Entry
			e, err = readMarkdownFile(path)
			entries = []*models.Entry{e}
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		count := importEntries(entries)
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Imported %d entries", count)))
		return nil
	},
}

// importEntries stores each entry and returns how many succeeded.
func importEntries(entries []*models.Entry) int {
	count := 0
	for _, e := range entries {
		var err error
		if len(e.Hash) > 0 {
			err = db.ImportEntry(dbConn, e)
		} else {
			_, err = db.AddEntry(dbConn, e.Keywords, e.Title, e.Content)
		}
		if err != nil {
			logger.Warn("failed to import entry", zap.String("title", e.Title), zap.Error(err))
			continue
		}
		count++
	}
	return count
}

func readJSONFile(path string) ([]*models.Entry, error) {
	f, err := os.Open(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return export.ReadJSON(f)
}

func readMarkdownFile(path string) (*models.Entry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return nil, err
	}
	return export.ParseMarkdown(path, data)
}

func readMarkdownDir(dir string) ([]*models.Entry, error) {
	var entries []*models.Entry

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		e, err := readMarkdownFile(path)
		if err != nil {
			logger.Warn("skipping markdown file", zap.String("path", path), zap.Error(err))
			return nil
		}
		entries = append(entries, e)
		return nil
	})

	return entries, err
}

func init() {
	rootCmd.AddCommand(importCmd)
}
