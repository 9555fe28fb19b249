// ABOUTME: Show command for displaying a single entry.
// ABOUTME: Renders the content as markdown with glamour.

package main

import (
	"fmt"

	"github.com/harper/didi/internal/db"
	"github.com/harper/didi/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:         "show <id>",
	Short:       "Show an entry",
	Long:        `Display one entry, hidden or not, with its content rendered as markdown.`,
	Args:        cobra.ExactArgs(1),
	Annotations: needsDB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetBool("raw")

		entry, err := db.GetEntryByID(dbConn, ids[0])
		if err != nil {
			return fmt.Errorf("failed to get entry: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.FormatEntryHeader(entry))

		content := entry.Content + "\n"
		if !raw {
			content, _ = ui.FormatEntryContent(entry.Content)
		}
		fmt.Fprint(out, content)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("raw", false, "print content without markdown rendering")
	rootCmd.AddCommand(showCmd)
}
