// ABOUTME: Add command for writing a new diary entry.
// ABOUTME: Prompts for title, multi-line content, and keywords unless given as flags.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/harper/didi/internal/db"
	"github.com/harper/didi/internal/prompt"
	"github.com/harper/didi/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an entry",
	Long: `Add a diary entry. Values not given as flags are asked for interactively:
the title is one line, the content ends with an empty line, and keywords are
separated by whitespace.`,
	Args:        cobra.NoArgs,
	Annotations: needsDB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()
		flags := cmd.Flags()

		title, _ := flags.GetString("title")
		if !flags.Changed("title") {
			var err error
			title, err = prompt.ReadLine(reader, out, ui.Prompt("Title: "))
			if err != nil {
				return fmt.Errorf("failed to read title: %w", err)
			}
		}
		title = strings.TrimSpace(title)
		if title == "" {
			return fmt.Errorf("entry title cannot be empty")
		}

		content, _ := flags.GetString("content")
		if !flags.Changed("content") {
			var err error
			content, err = prompt.ReadMultiline(reader, out, ui.Prompt("Content: "))
			if err != nil {
				return fmt.Errorf("failed to read content: %w", err)
			}
		}

		rawKeywords, _ := flags.GetString("keywords")
		if !flags.Changed("keywords") {
			var err error
			rawKeywords, err = prompt.ReadLine(reader, out, ui.Prompt("Keywords: "))
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to read keywords: %w", err)
			}
		}

		entry, err := db.AddEntry(dbConn, prompt.ParseKeywords(rawKeywords), title, strings.TrimSpace(content))
		if err != nil {
			return fmt.Errorf("failed to add entry: %w", err)
		}
		logger.Debug("added entry", zap.Int64("id", entry.ID), zap.Strings("keywords", entry.Keywords))

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Added %s [%d]", entry.Title, entry.ID)))
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("title", "t", "", "entry title")
	addCmd.Flags().StringP("content", "c", "", "entry content (inline)")
	addCmd.Flags().StringP("keywords", "k", "", "whitespace-separated keywords")
	rootCmd.AddCommand(addCmd)
}
