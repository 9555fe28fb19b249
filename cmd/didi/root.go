// ABOUTME: Root command and shared per-run state for didi.
// ABOUTME: Resolves configuration, builds the logger, and opens the diary for subcommands.

package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/user"

	"github.com/harper/didi/internal/config"
	"github.com/harper/didi/internal/db"
	"github.com/harper/didi/internal/logging"
	"github.com/harper/didi/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// annotationOpenDB marks commands that need an open diary before RunE.
const annotationOpenDB = "didi/open-db"

var (
	cfg    *config.Config
	logger = zap.NewNop()
	dbConn *sql.DB
)

var rootCmd = &cobra.Command{
	Use:   "didi",
	Short: "A small CLI diary used to document your life",
	Long: `didi keeps short dated diary entries with keywords in a local SQLite file.

The diary lives at ~/digital_diary.sqlite unless --db, DIDI_URL, or the "url"
key of ~/.config/didi/config.yaml points somewhere else.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = logging.New(cfg.Debug)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		if cmd.Annotations[annotationOpenDB] == "" {
			return nil
		}

		dbConn, err = db.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open diary (use `didi create` first?): %w", err)
		}
		logger.Debug("opened diary", zap.String("path", cfg.DatabasePath))

		// stderr keeps stdout clean for piped listings and the MCP transport.
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Welcome(currentUser(), cfg.DatabasePath))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No subcommand given. Use flag --help for more information.")
		return err
	},
}

// Execute runs the root command and releases the diary and logger whether
// or not the command succeeded. Cobra skips post-run hooks on errors.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeDiary(); cerr != nil && err == nil {
		err = cerr
	}
	_ = logger.Sync()
	return err
}

func closeDiary() error {
	if dbConn == nil {
		return nil
	}
	err := dbConn.Close()
	dbConn = nil
	if err != nil {
		return fmt.Errorf("failed to close diary: %w", err)
	}
	return nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// needsDB returns the annotations for a command that operates on an
// existing diary.
func needsDB() map[string]string {
	return map[string]string{annotationOpenDB: "true"}
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "path to the diary database (overrides DIDI_URL)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
