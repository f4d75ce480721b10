package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexander-akhmetov/paintourney/internal/choice"
	"github.com/alexander-akhmetov/paintourney/internal/config"
	"github.com/alexander-akhmetov/paintourney/internal/debug"
	"github.com/alexander-akhmetov/paintourney/internal/dirs"
	"github.com/alexander-akhmetov/paintourney/internal/domain"
	"github.com/alexander-akhmetov/paintourney/internal/event"
	"github.com/alexander-akhmetov/paintourney/internal/screen"
	"github.com/alexander-akhmetov/paintourney/internal/store"
	"github.com/alexander-akhmetov/paintourney/internal/tournament"
)

// playFlags are shared by the root command and "play". Only one of them runs
// per invocation.
var playFlags struct {
	dataDir  string
	seed     uint64
	markdown bool
	recap    bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a tournament",
	Long: `Load every item from the data directory, shuffle them once and run
single-elimination rounds until one item is left.

Each round starts with an announcement. For every pair, move the highlight
with the left/right keys and confirm with enter. An odd item out advances
to the next round without a match.

Controls:
  ←/h     - Highlight the left item
  →/l     - Highlight the right item
  enter   - Confirm / continue
  ctrl+c  - Abort the tournament`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&playFlags.dataDir, "data-dir", "d", "", "Directory with item records (overrides data_dir)")
	cmd.Flags().Uint64Var(&playFlags.seed, "seed", 0, "Seed for the initial shuffle, 0 for random (overrides PAINTOURNEY_SEED)")
	cmd.Flags().BoolVar(&playFlags.markdown, "markdown", false, "Render item descriptions as markdown")
	cmd.Flags().BoolVar(&playFlags.recap, "recap", false, "Print the bracket to stdout once the tournament is over")
}

// cliFlags collects only the flags given on the command line so unset flags
// do not override config files.
func cliFlags(cmd *cobra.Command) config.CLIFlags {
	f := config.CLIFlags{DataDir: playFlags.dataDir}
	if cmd.Flags().Changed("seed") {
		f.Seed = &playFlags.seed
	}
	if cmd.Flags().Changed("markdown") {
		f.Markdown = &playFlags.markdown
	}
	if cmd.Flags().Changed("recap") {
		f.Recap = &playFlags.recap
	}
	return f
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cliFlags(cmd))
	if err != nil {
		return err
	}

	// malformed records must fail before the terminal is taken over
	items, err := loadPopulation(cfg.DataDir)
	if err != nil {
		return err
	}
	debug.Logf("play: loaded %d items from %s", len(items), cfg.DataDir)

	if debug.Enabled() {
		restore, err := logToFile()
		if err != nil {
			return err
		}
		defer restore()
	}

	rec := &event.Recorder{}
	play := newPlayFunc(cfg, items, rec.Handle)
	opts := Options{
		Keys:        cfg.Keys,
		AccentColor: cfg.AccentColor,
		Markdown:    cfg.Markdown,
	}
	if err := Run(cmd.Context(), opts, play); err != nil {
		return err
	}

	if cfg.Recap {
		writeRecap(cmd.OutOrStdout(), rec.Events())
	}
	return nil
}

func loadPopulation(dir string) ([]domain.Item, error) {
	items, err := store.Load(dir)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, tournament.ErrEmptyPopulation)
	}
	return items, nil
}

// newPlayFunc wires the engine to a Screen. Engine events go to onEvent.
func newPlayFunc(cfg *config.Config, items []domain.Item, onEvent event.Handler) PlayFunc {
	return func(ctx context.Context, s screen.Screen) error {
		engine := tournament.New(
			choice.NewChooser(s, cfg.Prompt),
			choice.NewAnnouncer(s, ContinueHint(cfg.Keys)),
			tournament.Config{
				Noun:       cfg.Noun,
				PluralNoun: cfg.PluralNoun,
				Seed:       cfg.Seed,
			},
		)
		engine.SetEventHandler(onEvent)
		_, err := engine.Play(ctx, items)
		return err
	}
}

// logToFile sends debug output to the state dir while the TUI owns stderr.
func logToFile() (restore func(), err error) {
	if err := os.MkdirAll(dirs.StateDir(), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	f, err := tea.LogToFile(dirs.DebugLogPath(), "paintourney")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	reset := debug.SetOutput(f)
	return func() {
		reset()
		f.Close()
	}, nil
}

func writeRecap(w io.Writer, events []event.Event) {
	if len(events) == 0 {
		return
	}
	fmt.Fprintln(w, renderRecap(events))
}
