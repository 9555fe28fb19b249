// ABOUTME: Configuration resolution for didi.
// ABOUTME: Merges flags, DIDI_* environment, .env, and an optional YAML config file.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix       = "DIDI"
	DefaultFilename = "digital_diary.sqlite"
)

// Config holds the settings resolved once at process start.
type Config struct {
	DatabasePath string `mapstructure:"url"`
	Debug        bool   `mapstructure:"debug"`
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "didi")
}

// ConfigPath returns the path to the optional config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultDatabasePath returns the diary location used when nothing overrides it.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("couldn't retrieve home directory: %w", err)
	}
	return filepath.Join(home, DefaultFilename), nil
}

// Load resolves configuration. Precedence, highest first: flags bound from
// flags ("db", "debug"), DIDI_URL/DIDI_DEBUG (also read from ./.env), the
// config file, and finally the home-directory default.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv("url"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv("debug"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if flags != nil {
		if f := flags.Lookup("db"); f != nil {
			if err := v.BindPFlag("url", f); err != nil {
				return nil, fmt.Errorf("bind flag: %w", err)
			}
		}
		if f := flags.Lookup("debug"); f != nil {
			if err := v.BindPFlag("debug", f); err != nil {
				return nil, fmt.Errorf("bind flag: %w", err)
			}
		}
	}

	v.SetConfigFile(ConfigPath())
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DatabasePath == "" {
		path, err := DefaultDatabasePath()
		if err != nil {
			return nil, err
		}
		cfg.DatabasePath = path
	}

	return &cfg, nil
}
