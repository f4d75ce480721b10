// Package config provides layered configuration for paintourney.
// Configuration is loaded from multiple sources with the following precedence:
// embedded defaults → global file → env vars → local file → CLI flags
package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexander-akhmetov/paintourney/internal/dirs"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

const fileName = "config.yaml"

// KeysConfig maps logical actions to key names as reported by bubbletea
// (e.g. "left", "enter", "ctrl+c", "h").
type KeysConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Confirm []string `yaml:"confirm"`
	Quit    []string `yaml:"quit"`
}

// Config holds all configuration settings for paintourney.
// Fields ending in *Set track whether that field was explicitly set, so a
// later layer can override an earlier one with a zero value.
type Config struct {
	DataDir     string     `yaml:"data_dir"`
	Seed        uint64     `yaml:"seed"`
	Prompt      string     `yaml:"prompt"`
	Noun        string     `yaml:"noun"`
	PluralNoun  string     `yaml:"plural_noun"`
	AccentColor string     `yaml:"accent_color"`
	Markdown    bool       `yaml:"markdown"`
	Recap       bool       `yaml:"recap"`
	Keys        KeysConfig `yaml:"keys"`

	SeedSet     bool `yaml:"-"`
	MarkdownSet bool `yaml:"-"`
	RecapSet    bool `yaml:"-"`

	configDir string
	localDir  string
	sources   []string
}

// Sources returns the ordered list of sources that contributed to this config.
func (c *Config) Sources() []string {
	return c.sources
}

// LocalDir returns the local project config directory if one was detected.
func (c *Config) LocalDir() string {
	return c.localDir
}

// ConfigDir returns the global config directory.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Load loads configuration from the default locations, picking up
// .paintourney/ in the current working directory for local overrides.
func Load() (*Config, error) {
	var localDir string
	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, dirs.LocalDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			localDir = candidate
		}
	}
	return LoadWithDirs(dirs.ConfigDir(), localDir)
}

// LoadWithDirs loads configuration with explicit global and local
// directories. Missing files are skipped; an empty localDir disables the
// local layer.
func LoadWithDirs(globalDir, localDir string) (*Config, error) {
	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}
	cfg.sources = append(cfg.sources, "embedded")

	if err := cfg.mergeFile(filepath.Join(globalDir, fileName)); err != nil {
		return nil, fmt.Errorf("load global config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if localDir != "" {
		if err := cfg.mergeFile(filepath.Join(localDir, fileName)); err != nil {
			return nil, fmt.Errorf("load local config: %w", err)
		}
	}

	cfg.configDir = globalDir
	cfg.localDir = localDir
	return cfg, nil
}

// InstallDefaults writes the embedded default config into configDir unless a
// config file already exists. It returns the config path and whether it was
// created.
func InstallDefaults(configDir string) (string, bool, error) {
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", false, fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(configDir, fileName)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, err
	}

	data, err := defaultsFS.ReadFile("defaults/" + fileName)
	if err != nil {
		return "", false, fmt.Errorf("read embedded config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", false, fmt.Errorf("write config file: %w", err)
	}
	return path, true, nil
}

func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/" + fileName)
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return parseConfig(data)
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // user's config file
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	src, err := parseConfigWithTracking(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.mergeFrom(src)
	c.sources = append(c.sources, path)
	return nil
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// parseConfigWithTracking parses YAML config and records which scalar fields
// were present, so explicit zero values survive the merge.
func parseConfigWithTracking(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	_, cfg.SeedSet = raw["seed"]
	_, cfg.MarkdownSet = raw["markdown"]
	_, cfg.RecapSet = raw["recap"]
	return cfg, nil
}

// applyEnv applies environment variables. Env vars sit between global and
// local config in precedence.
func (c *Config) applyEnv() error {
	if v := os.Getenv("PAINTOURNEY_DATA_DIR"); v != "" {
		c.DataDir = v
		c.sources = append(c.sources, "env:PAINTOURNEY_DATA_DIR")
	}

	if v := os.Getenv("PAINTOURNEY_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PAINTOURNEY_SEED: %w", err)
		}
		c.Seed = n
		c.SeedSet = true
		c.sources = append(c.sources, "env:PAINTOURNEY_SEED")
	}

	if v := os.Getenv("PAINTOURNEY_ACCENT_COLOR"); v != "" {
		c.AccentColor = v
		c.sources = append(c.sources, "env:PAINTOURNEY_ACCENT_COLOR")
	}

	if v := os.Getenv("PAINTOURNEY_MARKDOWN"); v != "" {
		c.Markdown = v == "true" || v == "1"
		c.MarkdownSet = true
		c.sources = append(c.sources, "env:PAINTOURNEY_MARKDOWN")
	}
	return nil
}

func (c *Config) mergeFrom(src *Config) {
	if src.DataDir != "" {
		c.DataDir = src.DataDir
	}
	if src.SeedSet {
		c.Seed = src.Seed
		c.SeedSet = true
	}
	if src.Prompt != "" {
		c.Prompt = src.Prompt
	}
	if src.Noun != "" {
		c.Noun = src.Noun
	}
	if src.PluralNoun != "" {
		c.PluralNoun = src.PluralNoun
	}
	if src.AccentColor != "" {
		c.AccentColor = src.AccentColor
	}
	if src.MarkdownSet {
		c.Markdown = src.Markdown
		c.MarkdownSet = true
	}
	if src.RecapSet {
		c.Recap = src.Recap
		c.RecapSet = true
	}

	if len(src.Keys.Left) > 0 {
		c.Keys.Left = src.Keys.Left
	}
	if len(src.Keys.Right) > 0 {
		c.Keys.Right = src.Keys.Right
	}
	if len(src.Keys.Confirm) > 0 {
		c.Keys.Confirm = src.Keys.Confirm
	}
	if len(src.Keys.Quit) > 0 {
		c.Keys.Quit = src.Keys.Quit
	}
}

// CLIFlags holds command line overrides. Nil pointers mean "not given".
type CLIFlags struct {
	DataDir  string
	Seed     *uint64
	Markdown *bool
	Recap    *bool
}

// ApplyCLIFlags applies CLI flag overrides. CLI flags have the highest
// precedence.
func (c *Config) ApplyCLIFlags(f CLIFlags) {
	if f.DataDir != "" {
		c.DataDir = f.DataDir
		c.sources = append(c.sources, "cli:data-dir")
	}
	if f.Seed != nil {
		c.Seed = *f.Seed
		c.SeedSet = true
		c.sources = append(c.sources, "cli:seed")
	}
	if f.Markdown != nil {
		c.Markdown = *f.Markdown
		c.MarkdownSet = true
		c.sources = append(c.sources, "cli:markdown")
	}
	if f.Recap != nil {
		c.Recap = *f.Recap
		c.RecapSet = true
		c.sources = append(c.sources, "cli:recap")
	}
}

// NormalizeKey maps config spellings of a key to the name bubbletea reports
// for it, so "space" and " " are the same key.
func NormalizeKey(k string) string {
	switch strings.ToLower(k) {
	case "space":
		return " "
	case "return":
		return "enter"
	}
	return k
}

// Validate reports configuration that would leave the tournament unplayable.
func (c *Config) Validate() error {
	var errs []error
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir must not be empty"))
	}

	bound := map[string]string{}
	for _, b := range []struct {
		action string
		keys   []string
	}{
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"confirm", c.Keys.Confirm},
		{"quit", c.Keys.Quit},
	} {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s must have at least one key", b.action))
			continue
		}
		for _, k := range b.keys {
			k = NormalizeKey(k)
			if other, ok := bound[k]; ok && other != b.action {
				errs = append(errs, fmt.Errorf("key %q is bound to both %s and %s", k, other, b.action))
				continue
			}
			bound[k] = b.action
		}
	}
	return errors.Join(errs...)
}
