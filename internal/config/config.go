// Package config loads the optional gup configuration file.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the gup configuration.
type Config struct {
	// WorkspaceDir is the directory to update when no --dir flag is
	// given and the current directory is not a repository.
	WorkspaceDir string `toml:"workspace_dir"`

	// Jobs is the worker-pool size for workspace updates. 0 means the
	// built-in default.
	Jobs int `toml:"jobs"`

	// GitTimeoutSecs is the per-command git timeout in seconds. 0 means
	// the built-in default. The GUP_GIT_TIMEOUT environment variable
	// takes precedence over this setting.
	GitTimeoutSecs int `toml:"git_timeout_secs"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{}
}

// GitTimeout returns the configured git timeout, or 0 if unset.
func (c Config) GitTimeout() time.Duration {
	if c.GitTimeoutSecs <= 0 {
		return 0
	}
	return time.Duration(c.GitTimeoutSecs) * time.Second
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gup", "config.toml"), nil
}

// Load reads the config file, returning defaults if it does not exist.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), fmt.Errorf("locate config: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path, returning defaults if it does not
// exist.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg.WorkspaceDir, err = expandPath(cfg.WorkspaceDir)
	if err != nil {
		return Default(), err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if c.GitTimeoutSecs < 0 {
		return fmt.Errorf("git_timeout_secs must not be negative, got %d", c.GitTimeoutSecs)
	}
	if c.WorkspaceDir != "" && c.WorkspaceDir[0] != '~' && !filepath.IsAbs(c.WorkspaceDir) {
		return fmt.Errorf("workspace_dir must be absolute or start with ~, got %q", c.WorkspaceDir)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

type ctxKey struct{}

// WithConfig attaches a config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns the default config if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	def := Default()
	return &def
}
