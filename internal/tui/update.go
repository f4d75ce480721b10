package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/alexander-akhmetov/paintourney/internal/debug"
)

func createRendererCmd(width int) tea.Cmd {
	return func() tea.Msg {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			debug.Logf("tui: failed to create glamour renderer: %v", err)
		}
		return rendererReadyMsg{renderer: renderer, width: width}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		debug.Logf("tui: quit key %q", msg.String())
		m.interrupted = true
		return m, tea.Quit
	}
	if m.sink != nil {
		m.sink(m.keys.lookup(msg))
	}
	return m, nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.markdown {
			w := computeLayout(m.width, m.height).panelBodyWidth()
			if w != m.rendererWidth {
				m.rendererWidth = w
				return m, createRendererCmd(w)
			}
		}

	case rendererReadyMsg:
		// a resize may have outdated this renderer already
		if msg.width == m.rendererWidth {
			m.renderer = msg.renderer
		}

	case sceneMsg:
		m.scene = msg.scene
	}

	return m, nil
}
