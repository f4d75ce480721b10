package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/glamour"

	"github.com/alexander-akhmetov/paintourney/internal/config"
	"github.com/alexander-akhmetov/paintourney/internal/screen"
)

// Options configure the terminal UI.
type Options struct {
	Keys        config.KeysConfig
	AccentColor string
	// Markdown renders panel bodies with glamour.
	Markdown bool
}

// Model is the bubbletea model behind the terminal Screen. It only draws the
// latest scene and forwards key presses; all tournament state lives with the
// caller of Show and ReadKey.
type Model struct {
	scene  screen.Scene
	keys   keyMap
	help   help.Model
	accent string
	width  int
	height int

	// sink receives every non-quit key press. It must not block.
	sink func(screen.Key)

	markdown      bool
	renderer      *glamour.TermRenderer
	rendererWidth int

	interrupted bool
}

// NewModel creates a Model forwarding key presses to sink.
func NewModel(opts Options, sink func(screen.Key)) Model {
	return Model{
		keys:     newKeyMap(opts.Keys),
		help:     help.New(),
		accent:   opts.AccentColor,
		sink:     sink,
		markdown: opts.Markdown,
	}
}

// Interrupted reports whether the user pressed a quit key.
func (m Model) Interrupted() bool {
	return m.interrupted
}

type sceneMsg struct {
	scene screen.Scene
}

type rendererReadyMsg struct {
	renderer *glamour.TermRenderer
	width    int
}
