// ABOUTME: Tests for the root command lifecycle.
// ABOUTME: Checks that the diary is released after failing and succeeding commands.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/harper/didi/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWith(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("DIDI_URL", "")

	noColor := color.NoColor
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		color.NoColor = noColor
	})

	err := Execute()
	return stdout.String(), stderr.String(), err
}

func newDiary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diary.sqlite")
	conn, err := db.Initialize(path)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	return path
}

func TestExecuteClosesDiaryOnFailure(t *testing.T) {
	path := newDiary(t)

	_, stderr, err := executeWith(t, "--db", path, "show", "7")
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrEntryNotFound)
	assert.Equal(t, ExitNotFound, exitCode(err))
	assert.Nil(t, dbConn, "diary should be closed after a failing command")
	assert.Contains(t, stderr, "at '"+path+"'!")
}

func TestExecuteClosesDiaryOnSuccess(t *testing.T) {
	path := newDiary(t)

	stdout, stderr, err := executeWith(t, "--db", path, "list")
	require.NoError(t, err)
	assert.Nil(t, dbConn, "diary should be closed after a successful command")
	assert.Contains(t, stdout, "Found 0 entries.")
	assert.NotContains(t, stdout, "Welcome", "banner belongs on stderr")
	assert.Contains(t, stderr, "Welcome ")
}

func TestExecuteSkipsBannerWithoutDiary(t *testing.T) {
	_, stderr, err := executeWith(t, "--db", filepath.Join(t.TempDir(), "unused.sqlite"))
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Welcome")
}
