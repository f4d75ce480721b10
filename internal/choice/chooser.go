package choice

import (
	"context"

	"github.com/alexander-akhmetov/paintourney/internal/debug"
	"github.com/alexander-akhmetov/paintourney/internal/domain"
	"github.com/alexander-akhmetov/paintourney/internal/screen"
)

// DefaultPrompt is the title of the choice frame.
const DefaultPrompt = "What is the most painful one between these two:"

// Chooser resolves head-to-head comparisons on a Screen.
type Chooser struct {
	screen screen.Screen
	prompt string
}

// NewChooser creates a Chooser. An empty prompt falls back to DefaultPrompt.
func NewChooser(s screen.Screen, prompt string) *Chooser {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &Chooser{screen: s, prompt: prompt}
}

// Choose shows a (left) and b (right) and blocks until the user confirms a
// side. The screen is redrawn before every key read.
func (c *Chooser) Choose(ctx context.Context, a, b domain.Item) (domain.Item, error) {
	pair := NewPair(a, b)
	for {
		if err := c.screen.Show(ctx, pair.Scene(c.prompt)); err != nil {
			return domain.Item{}, screen.Interaction("draw choice", err)
		}
		key, err := c.screen.ReadKey(ctx)
		if err != nil {
			return domain.Item{}, screen.Interaction("read key", err)
		}
		pair = pair.Apply(key)
		if winner, ok := pair.Winner(); ok {
			debug.Logf("choice: %q over %q", winner.Name, loserOf(pair).Name)
			return winner, nil
		}
	}
}

func loserOf(p Pair) domain.Item {
	if p.Selection == LeftSelected {
		return p.Right
	}
	return p.Left
}
