package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields the emass client needs.
type Config struct {
	APIBase string
	DataDir string
}

const (
	defaultConfigPath = "~/.config/emass/config.toml"
	defaultDataDir    = "~/.local/share/emass"
	defaultAPIBase    = "127.0.0.1:8080"
)

// Load locates and parses the config, falling back to defaults when missing.
// A .env file in the working directory and the EMASS_API_BASE /
// EMASS_DATA_DIR environment variables override the file.
func Load(path string) (Config, error) {
	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIBase: defaultAPIBase, DataDir: defaultDataDir}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg.withOverrides()
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase string `toml:"api_base"`
		DataDir string `toml:"data_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}
	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = dir
	}

	return cfg.withOverrides()
}

// withOverrides applies environment overrides and expands paths.
func (c Config) withOverrides() (Config, error) {
	if base := strings.TrimSpace(os.Getenv("EMASS_API_BASE")); base != "" {
		c.APIBase = base
	}
	if dir := strings.TrimSpace(os.Getenv("EMASS_DATA_DIR")); dir != "" {
		c.DataDir = dir
	}
	c.DataDir = mustExpand(c.DataDir)
	return c, nil
}

// SessionPath returns the path of the persisted session file.
func (c Config) SessionPath() string {
	return filepath.Join(c.DataDir, "session.json")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
