package tui

import (
	"fmt"
	"strings"

	"github.com/alexander-akhmetov/paintourney/internal/event"
)

const recapWidth = 40

// renderRecap draws the bracket as played, one section per round.
func renderRecap(events []event.Event) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tournament recap"))
	b.WriteString("\n")

	for _, ev := range events {
		switch ev.Kind {
		case event.KindRoundStarted:
			title := fmt.Sprintf("Round %d (%d left)", ev.Round, ev.Remaining)
			b.WriteString("\n" + sectionHeader(title, recapWidth) + "\n")
		case event.KindMatch:
			b.WriteString("  " + winnerStyle.Render(ev.Winner) +
				labelStyle.Render(" over ") + loserStyle.Render(ev.Loser) + "\n")
		case event.KindBye:
			b.WriteString("  " + valueStyle.Render(ev.Winner) + labelStyle.Render(" (bye)") + "\n")
		case event.KindWinner:
			b.WriteString("\n" + labelStyle.Render("Winner: ") + winnerStyle.Render(ev.Winner) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
