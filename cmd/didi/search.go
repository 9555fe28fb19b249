// ABOUTME: Search command for finding entries by title or keyword.
// ABOUTME: Terms match title substrings case-insensitively or whole keywords.

package main

import (
	"fmt"
	"strings"

	"github.com/harper/didi/internal/db"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <terms...>",
	Short: "Search for entries",
	Long: `Show entries whose title contains any of the terms, or whose keywords
include any of the terms. Matching is case-insensitive.`,
	Args:        cobra.MinimumNArgs(1),
	Annotations: needsDB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		terms := make([]string, len(args))
		for i, a := range args {
			terms[i] = strings.ToLower(a)
		}

		entries, err := db.SearchEntries(dbConn, terms)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		printEntries(cmd.OutOrStdout(), entries, displayOptions(cmd))
		return nil
	},
}

func init() {
	addDisplayFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}
