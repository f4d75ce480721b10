package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/paintourney/internal/config"
	"github.com/alexander-akhmetov/paintourney/internal/dirs"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage paintourney configuration",
	Long:  `View and manage paintourney configuration.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved configuration with its sources",
	Long: `Show the fully resolved configuration and the sources it was built from.

Configuration is loaded from multiple sources with the following precedence:
  1. Embedded defaults (built into binary)
  2. Global config (~/.config/paintourney/config.yaml)
  3. Environment variables (PAINTOURNEY_*)
  4. Local config (.paintourney/config.yaml)
  5. CLI flags (highest precedence)`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to the global config directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, created, err := config.InstallDefaults(dirs.ConfigDir())
		if err != nil {
			return fmt.Errorf("failed to install config: %w", err)
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, left untouched\n", path)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	writeConfig(cmd.OutOrStdout(), cfg)
	return nil
}

func writeConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "# Paintourney Configuration")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "## Sources (in order of precedence)")
	for _, src := range cfg.Sources() {
		fmt.Fprintf(w, "  - %s\n", src)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Directories")
	fmt.Fprintf(w, "  Global config: %s\n", cfg.ConfigDir())
	if cfg.LocalDir() != "" {
		fmt.Fprintf(w, "  Local config:  %s\n", cfg.LocalDir())
	} else {
		fmt.Fprintf(w, "  Local config:  (none detected)\n")
	}
	fmt.Fprintf(w, "  Debug log:     %s\n", dirs.DebugLogPath())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Tournament")
	fmt.Fprintf(w, "  data_dir:     %s\n", cfg.DataDir)
	if cfg.Seed != 0 {
		fmt.Fprintf(w, "  seed:         %d\n", cfg.Seed)
	} else {
		fmt.Fprintf(w, "  seed:         (random)\n")
	}
	fmt.Fprintf(w, "  noun:         %s / %s\n", cfg.Noun, cfg.PluralNoun)
	fmt.Fprintf(w, "  recap:        %t\n", cfg.Recap)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Display")
	fmt.Fprintf(w, "  prompt:       %s\n", cfg.Prompt)
	fmt.Fprintf(w, "  accent_color: %s\n", cfg.AccentColor)
	fmt.Fprintf(w, "  markdown:     %t\n", cfg.Markdown)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Keys")
	fmt.Fprintf(w, "  left:    %s\n", strings.Join(cfg.Keys.Left, ", "))
	fmt.Fprintf(w, "  right:   %s\n", strings.Join(cfg.Keys.Right, ", "))
	fmt.Fprintf(w, "  confirm: %s\n", strings.Join(cfg.Keys.Confirm, ", "))
	fmt.Fprintf(w, "  quit:    %s\n", strings.Join(cfg.Keys.Quit, ", "))
}
