package tui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version information set from main.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

var rootCmd = &cobra.Command{
	Use:   "paintourney",
	Short: "Single-elimination tournament of the most painful things",
	Long: `Paintourney loads a directory of named, described items, shuffles them and
pairs them up round after round. For every pair you pick the more painful one
until a single winner is left.

Without a subcommand it plays a tournament (same as "paintourney play").`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

// Execute runs the CLI. SIGINT and SIGTERM cancel the tournament and restore
// the terminal.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	addPlayFlags(rootCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(configCmd)
}
