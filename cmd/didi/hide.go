// ABOUTME: Hide and unhide commands for changing entry visibility.
// ABOUTME: Validates ids as positive integers before touching the diary.

package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/harper/didi/internal/db"
	"github.com/harper/didi/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ValidationError reports a command-line argument that is not a valid id.
type ValidationError struct {
	Arg    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid id %q: %s", e.Arg, e.Reason)
}

var hideCmd = &cobra.Command{
	Use:         "hide <ids...>",
	Short:       "Hide one or more entries",
	Args:        validateIDArgs,
	Annotations: needsDB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetHidden(cmd, args, true)
	},
}

var unhideCmd = &cobra.Command{
	Use:         "unhide <ids...>",
	Short:       "Unhide one or more entries",
	Args:        validateIDArgs,
	Annotations: needsDB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetHidden(cmd, args, false)
	},
}

func runSetHidden(cmd *cobra.Command, args []string, hidden bool) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	n, err := db.SetHidden(dbConn, ids, hidden)
	if err != nil {
		return fmt.Errorf("failed to update entries: %w", err)
	}
	logger.Debug("updated visibility", zap.Int64s("ids", ids), zap.Bool("hidden", hidden), zap.Int64("changed", n))

	fmt.Fprint(cmd.OutOrStdout(), ui.FormatChanged(n))
	return nil
}

// validateIDArgs runs before the diary is opened so bad input never touches it.
func validateIDArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("requires at least one id")
	}
	_, err := parseIDs(args)
	return err
}

// parseIDs converts positive integer arguments to ids, sorted and deduplicated.
func parseIDs(args []string) ([]int64, error) {
	seen := make(map[int64]bool, len(args))
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, &ValidationError{Arg: a, Reason: "only positive numbers are accepted"}
		}
		if id <= 0 {
			return nil, &ValidationError{Arg: a, Reason: "ids start at 1"}
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func init() {
	rootCmd.AddCommand(hideCmd)
	rootCmd.AddCommand(unhideCmd)
}
