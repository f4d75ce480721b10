package choice

import (
	"context"

	"github.com/alexander-akhmetov/paintourney/internal/screen"
)

// DefaultHint is the trailing instruction of announcements.
const DefaultHint = "Press enter to continue"

// Announcer shows full-screen messages that wait for confirmation.
type Announcer struct {
	screen screen.Screen
	hint   string
}

// NewAnnouncer creates an Announcer. An empty hint falls back to DefaultHint.
func NewAnnouncer(s screen.Screen, hint string) *Announcer {
	if hint == "" {
		hint = DefaultHint
	}
	return &Announcer{screen: s, hint: hint}
}

// Announce redraws message until a confirm key arrives.
func (a *Announcer) Announce(ctx context.Context, message string) error {
	scene := screen.InfoScene{Message: message, Hint: a.hint}
	for {
		if err := a.screen.Show(ctx, scene); err != nil {
			return screen.Interaction("draw announcement", err)
		}
		key, err := a.screen.ReadKey(ctx)
		if err != nil {
			return screen.Interaction("read key", err)
		}
		if key == screen.KeyConfirm {
			return nil
		}
	}
}
