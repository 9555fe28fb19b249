// ABOUTME: Tests for configuration resolution.
// ABOUTME: Verifies flag > env > config file > home default precedence.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("DIDI_URL", "")
	t.Setenv("DIDI_DEBUG", "")
	return home
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("db", "", "")
	fs.Bool("debug", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaultsToHome(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultFilename), cfg.DatabasePath)
	assert.False(t, cfg.Debug)
}

func TestLoadEnvOverridesDefault(t *testing.T) {
	isolate(t)
	t.Setenv("DIDI_URL", "/tmp/from-env.sqlite")
	t.Setenv("DIDI_DEBUG", "true")

	cfg, err := Load(testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.sqlite", cfg.DatabasePath)
	assert.True(t, cfg.Debug)
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("DIDI_URL", "/tmp/from-env.sqlite")

	cfg, err := Load(testFlags(t, "--db", "/tmp/from-flag.sqlite"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-flag.sqlite", cfg.DatabasePath)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(ConfigDir(), 0750))
	require.NoError(t, os.WriteFile(ConfigPath(), []byte("url: /tmp/from-file.sqlite\n"), 0600))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-file.sqlite", cfg.DatabasePath)

	t.Setenv("DIDI_URL", "/tmp/from-env.sqlite")
	cfg, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.sqlite", cfg.DatabasePath)
}

func TestLoadInvalidConfigFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(ConfigDir(), 0750))
	require.NoError(t, os.WriteFile(ConfigPath(), []byte("url: [unterminated\n"), 0600))

	_, err := Load(nil)
	assert.Error(t, err)
}
