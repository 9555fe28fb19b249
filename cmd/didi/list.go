// ABOUTME: List command and the display flags shared with search.
// ABOUTME: Prints every visible entry followed by the number shown.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/harper/didi/internal/db"
	"github.com/harper/didi/internal/models"
	"github.com/harper/didi/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listCmd = &cobra.Command{
	Use:         "list",
	Short:       "List all entries",
	Long:        `List all entries in the order they were written. Hidden entries are skipped unless --hidden is given.`,
	Args:        cobra.NoArgs,
	Annotations: needsDB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := db.ListEntries(dbConn)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		printEntries(cmd.OutOrStdout(), entries, displayOptions(cmd))
		return nil
	},
}

// addDisplayFlags registers the flags that control how entries are printed.
// -H is used for --hash because -h is reserved for help.
func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("nocontent", "n", false, "don't show content")
	cmd.Flags().BoolP("id", "i", false, "show id of entry")
	cmd.Flags().BoolP("hash", "H", false, "show hash of entry")
	cmd.Flags().BoolP("keywords", "k", false, "show keywords of entry")
	cmd.Flags().BoolP("nodate", "d", false, "don't show date")
	cmd.Flags().BoolP("hidden", "a", false, "show hidden entries")
}

func displayOptions(cmd *cobra.Command) ui.DisplayOptions {
	noContent, _ := cmd.Flags().GetBool("nocontent")
	id, _ := cmd.Flags().GetBool("id")
	hash, _ := cmd.Flags().GetBool("hash")
	keywords, _ := cmd.Flags().GetBool("keywords")
	noDate, _ := cmd.Flags().GetBool("nodate")
	hidden, _ := cmd.Flags().GetBool("hidden")

	return ui.DisplayOptions{
		ShowDate:     !noDate,
		ShowID:       id,
		ShowHash:     hash,
		ShowKeywords: keywords,
		ShowContent:  !noContent,
		ShowHidden:   hidden,
	}
}

func printEntries(w io.Writer, entries []*models.Entry, opts ui.DisplayOptions) {
	out, shown := ui.FormatEntries(entries, opts, ui.TerminalWidth(os.Stdout))
	logger.Debug("printed entries", zap.Int("loaded", len(entries)), zap.Int("shown", shown))
	fmt.Fprint(w, out)
}

func init() {
	addDisplayFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}
