package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexander-akhmetov/paintourney/internal/config"
	"github.com/alexander-akhmetov/paintourney/internal/screen"
)

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func newKeyMap(cfg config.KeysConfig) keyMap {
	return keyMap{
		Left:    binding(cfg.Left, "left"),
		Right:   binding(cfg.Right, "right"),
		Confirm: binding(cfg.Confirm, "choose"),
		Quit:    binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = config.NormalizeKey(k)
	}
	return key.NewBinding(key.WithKeys(names...), key.WithHelp(keyLabel(names), desc))
}

func keyLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		switch k {
		case "left":
			labels = append(labels, "←")
		case "right":
			labels = append(labels, "→")
		case " ":
			labels = append(labels, "space")
		default:
			labels = append(labels, k)
		}
	}
	return strings.Join(labels, "/")
}

// lookup maps a key press to a logical key. Quit is handled by the model
// and never reaches the tournament.
func (k keyMap) lookup(msg tea.KeyMsg) screen.Key {
	switch {
	case key.Matches(msg, k.Left):
		return screen.KeyLeft
	case key.Matches(msg, k.Right):
		return screen.KeyRight
	case key.Matches(msg, k.Confirm):
		return screen.KeyConfirm
	}
	return screen.KeyOther
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k keyMap) infoHelp() []key.Binding {
	confirm := k.Confirm
	confirm.SetHelp(confirm.Help().Key, "continue")
	return []key.Binding{confirm, k.Quit}
}

// ContinueHint is the trailing instruction of announcements for the
// configured confirm keys.
func ContinueHint(cfg config.KeysConfig) string {
	if len(cfg.Confirm) == 0 {
		return ""
	}
	return fmt.Sprintf("Press %s to continue", keyLabel([]string{config.NormalizeKey(cfg.Confirm[0])}))
}
