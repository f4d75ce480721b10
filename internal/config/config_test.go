package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}

func TestLoadEmbedded(t *testing.T) {
	cfg, err := loadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "What is the most painful one between these two:", cfg.Prompt)
	assert.Equal(t, "language", cfg.Noun)
	assert.Equal(t, "languages", cfg.PluralNoun)
	assert.Equal(t, "196", cfg.AccentColor)
	assert.False(t, cfg.Markdown)
	assert.False(t, cfg.Recap)
	assert.Equal(t, []string{"left", "h"}, cfg.Keys.Left)
	assert.Equal(t, []string{"right", "l"}, cfg.Keys.Right)
	assert.Equal(t, []string{"enter"}, cfg.Keys.Confirm)
	assert.Equal(t, []string{"ctrl+c"}, cfg.Keys.Quit)
	require.NoError(t, cfg.Validate())
}

func TestLoadWithDirs_NoFiles(t *testing.T) {
	cfg, err := LoadWithDirs(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, []string{"embedded"}, cfg.Sources())
}

func TestLoadWithDirs_LocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	localDir := t.TempDir()

	writeConfig(t, globalDir, "data_dir: /global/data\nnoun: framework\nseed: 5\n")
	writeConfig(t, localDir, "data_dir: ./local\nkeys:\n  confirm: [enter, space]\n")

	cfg, err := LoadWithDirs(globalDir, localDir)
	require.NoError(t, err)

	assert.Equal(t, "./local", cfg.DataDir)                       // from local
	assert.Equal(t, "framework", cfg.Noun)                        // from global
	assert.Equal(t, uint64(5), cfg.Seed)                          // from global
	assert.Equal(t, "languages", cfg.PluralNoun)                  // from embedded
	assert.Equal(t, []string{"enter", "space"}, cfg.Keys.Confirm) // from local
	assert.Equal(t, []string{"left", "h"}, cfg.Keys.Left)         // from embedded
	assert.Equal(t, localDir, cfg.LocalDir())
	assert.Equal(t, globalDir, cfg.ConfigDir())
}

func TestLoadWithDirs_ExplicitZeroOverrides(t *testing.T) {
	globalDir := t.TempDir()
	localDir := t.TempDir()

	writeConfig(t, globalDir, "seed: 9\nmarkdown: true\nrecap: true\n")
	writeConfig(t, localDir, "seed: 0\nmarkdown: false\n")

	cfg, err := LoadWithDirs(globalDir, localDir)
	require.NoError(t, err)

	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Markdown)
	assert.True(t, cfg.Recap) // untouched by local
}

func TestLoadWithDirs_InvalidYAML(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, "data_dir: [oops\n")

	_, err := LoadWithDirs(globalDir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load global config")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PAINTOURNEY_DATA_DIR", "/env/data")
	t.Setenv("PAINTOURNEY_SEED", "77")
	t.Setenv("PAINTOURNEY_ACCENT_COLOR", "#ff0000")
	t.Setenv("PAINTOURNEY_MARKDOWN", "1")

	cfg, err := loadEmbedded()
	require.NoError(t, err)
	require.NoError(t, cfg.applyEnv())

	assert.Equal(t, "/env/data", cfg.DataDir)
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.True(t, cfg.SeedSet)
	assert.Equal(t, "#ff0000", cfg.AccentColor)
	assert.True(t, cfg.Markdown)
	assert.Contains(t, cfg.Sources(), "env:PAINTOURNEY_SEED")
}

func TestApplyEnv_InvalidSeed(t *testing.T) {
	t.Setenv("PAINTOURNEY_SEED", "-3")

	_, err := LoadWithDirs(t.TempDir(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAINTOURNEY_SEED")
}

func TestEnvBetweenGlobalAndLocal(t *testing.T) {
	globalDir := t.TempDir()
	localDir := t.TempDir()

	writeConfig(t, globalDir, "data_dir: /global\nseed: 1\n")
	t.Setenv("PAINTOURNEY_DATA_DIR", "/env")
	t.Setenv("PAINTOURNEY_SEED", "2")
	writeConfig(t, localDir, "seed: 3\n")

	cfg, err := LoadWithDirs(globalDir, localDir)
	require.NoError(t, err)

	assert.Equal(t, "/env", cfg.DataDir) // env over global
	assert.Equal(t, uint64(3), cfg.Seed) // local over env
}

func TestApplyCLIFlags(t *testing.T) {
	cfg, err := loadEmbedded()
	require.NoError(t, err)

	seed := uint64(123)
	yes := true
	cfg.ApplyCLIFlags(CLIFlags{DataDir: "/cli", Seed: &seed, Markdown: &yes, Recap: &yes})

	assert.Equal(t, "/cli", cfg.DataDir)
	assert.Equal(t, uint64(123), cfg.Seed)
	assert.True(t, cfg.Markdown)
	assert.True(t, cfg.Recap)
	assert.Equal(t, []string{"cli:data-dir", "cli:seed", "cli:markdown", "cli:recap"}, cfg.Sources())
}

func TestApplyCLIFlagsEmptyNoOverride(t *testing.T) {
	cfg, err := loadEmbedded()
	require.NoError(t, err)

	cfg.ApplyCLIFlags(CLIFlags{})

	assert.Equal(t, "data", cfg.DataDir)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.Sources())
}

func TestParseConfigWithTracking(t *testing.T) {
	cfg, err := parseConfigWithTracking([]byte("seed: 0\n"))
	require.NoError(t, err)

	assert.True(t, cfg.SeedSet)
	assert.False(t, cfg.MarkdownSet)
	assert.False(t, cfg.RecapSet)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, "data_dir must not be empty"},
		{"no confirm key", func(c *Config) { c.Keys.Confirm = nil }, "keys.confirm must have at least one key"},
		{"key bound twice", func(c *Config) { c.Keys.Right = []string{"right", "h"} }, `key "h" is bound to both left and right`},
		{"alias bound twice", func(c *Config) {
			c.Keys.Left = []string{"enter"}
			c.Keys.Confirm = []string{"return"}
		}, `key "enter" is bound to both left and confirm`},
		{"space alias bound twice", func(c *Config) {
			c.Keys.Right = []string{" "}
			c.Keys.Confirm = []string{"SPACE"}
		}, `key " " is bound to both right and confirm`},
		{"repeated key in one action is fine", func(c *Config) { c.Keys.Left = []string{"left", "left"} }, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := loadEmbedded()
			require.NoError(t, err)
			tc.mutate(cfg)

			err = cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestInstallDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "paintourney")

	path, created, err := InstallDefaults(dir)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_dir: data")

	require.NoError(t, os.WriteFile(path, []byte("seed: 4\n"), 0o600))
	_, created, err = InstallDefaults(dir)
	require.NoError(t, err)
	assert.False(t, created, "existing config is never overwritten")

	cfg, err := LoadWithDirs(dir, "")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), cfg.Seed)
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, " ", NormalizeKey("space"))
	assert.Equal(t, " ", NormalizeKey("SPACE"))
	assert.Equal(t, "enter", NormalizeKey("return"))
	assert.Equal(t, "enter", NormalizeKey("enter"))
	assert.Equal(t, "h", NormalizeKey("h"))
}
