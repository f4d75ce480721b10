// Package event defines typed events emitted by the tournament engine and
// consumed by the debug log and the post-run recap.
package event

import "fmt"

// Kind identifies the type of event.
type Kind int

const (
	// KindRoundStarted marks the start of a round.
	KindRoundStarted Kind = iota
	// KindMatch is a decided head-to-head comparison.
	KindMatch
	// KindBye is an odd trailing item advancing without a comparison.
	KindBye
	// KindWinner is the last item standing.
	KindWinner
)

func (k Kind) String() string {
	switch k {
	case KindRoundStarted:
		return "round"
	case KindMatch:
		return "match"
	case KindBye:
		return "bye"
	case KindWinner:
		return "winner"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is a single typed event emitted by the engine.
type Event struct {
	Kind  Kind
	Round int
	// Remaining is the population size at the start of the round.
	Remaining int
	// Winner is the advancing item name (match, bye, winner).
	Winner string
	// Loser is the eliminated item name (match only).
	Loser string
}

// Handler is a callback that receives typed events.
type Handler func(Event)

// RoundStarted creates a KindRoundStarted event.
func RoundStarted(round, remaining int) Event {
	return Event{Kind: KindRoundStarted, Round: round, Remaining: remaining}
}

// Match creates a KindMatch event.
func Match(round int, winner, loser string) Event {
	return Event{Kind: KindMatch, Round: round, Winner: winner, Loser: loser}
}

// Bye creates a KindBye event.
func Bye(round int, name string) Event { return Event{Kind: KindBye, Round: round, Winner: name} }

// Winner creates a KindWinner event.
func Winner(round int, name string) Event { return Event{Kind: KindWinner, Round: round, Winner: name} }

// Text returns a one-line human readable description of the event.
func (e Event) Text() string {
	switch e.Kind {
	case KindRoundStarted:
		return fmt.Sprintf("round %d started with %d entrants", e.Round, e.Remaining)
	case KindMatch:
		return fmt.Sprintf("round %d: %s beat %s", e.Round, e.Winner, e.Loser)
	case KindBye:
		return fmt.Sprintf("round %d: %s advanced without a match", e.Round, e.Winner)
	case KindWinner:
		return fmt.Sprintf("winner: %s", e.Winner)
	}
	return e.Kind.String()
}

// Recorder collects events in order. It is not safe for concurrent use; the
// engine emits from a single goroutine and readers wait for it to finish.
type Recorder struct {
	events []Event
}

// Handle appends e.
func (r *Recorder) Handle(e Event) {
	r.events = append(r.events, e)
}

// Events returns the recorded events.
func (r *Recorder) Events() []Event {
	return r.events
}
