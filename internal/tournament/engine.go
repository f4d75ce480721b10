// Package tournament runs single-elimination rounds over a population of
// items until one is left.
//
// Pairing is strictly positional: each round walks the current order two at
// a time and an odd trailing item advances without a comparison. The order is
// shuffled once before the first round and never again, so an item that got a
// bye meets whatever lands next to it in the following round.
package tournament

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/alexander-akhmetov/paintourney/internal/debug"
	"github.com/alexander-akhmetov/paintourney/internal/domain"
	"github.com/alexander-akhmetov/paintourney/internal/event"
)

// ErrEmptyPopulation is returned when Run is called without entrants.
var ErrEmptyPopulation = errors.New("tournament needs at least one item")

// Chooser resolves a head-to-head comparison between a (left) and b (right).
type Chooser interface {
	Choose(ctx context.Context, a, b domain.Item) (domain.Item, error)
}

// Announcer shows a message and blocks until it is acknowledged.
type Announcer interface {
	Announce(ctx context.Context, message string) error
}

// ShuffleFunc permutes items in place.
type ShuffleFunc func(items []domain.Item)

// Config holds engine settings.
type Config struct {
	// Noun and PluralNoun name the entrants in announcements.
	Noun       string
	PluralNoun string
	// Seed makes the initial shuffle reproducible. Zero means random.
	Seed uint64
}

// Engine runs tournaments.
type Engine struct {
	chooser   Chooser
	announcer Announcer
	config    Config
	shuffle   ShuffleFunc
	onEvent   event.Handler
}

// New creates an Engine.
func New(chooser Chooser, announcer Announcer, config Config) *Engine {
	if config.Noun == "" {
		config.Noun = "item"
	}
	if config.PluralNoun == "" {
		config.PluralNoun = config.Noun + "s"
	}
	return &Engine{
		chooser:   chooser,
		announcer: announcer,
		config:    config,
		shuffle:   NewShuffle(config.Seed),
	}
}

// SetShuffle replaces the initial shuffle. Tests use an identity function to
// pin the bracket.
func (e *Engine) SetShuffle(fn ShuffleFunc) {
	e.shuffle = fn
}

// SetEventHandler sets a callback for tournament progress events.
func (e *Engine) SetEventHandler(h event.Handler) {
	e.onEvent = h
}

// NewShuffle returns a uniform shuffle. A non-zero seed makes it
// deterministic.
func NewShuffle(seed uint64) ShuffleFunc {
	var r *rand.Rand
	if seed != 0 {
		r = rand.New(rand.NewPCG(seed, seed))
	}
	return func(items []domain.Item) {
		swap := func(i, j int) { items[i], items[j] = items[j], items[i] }
		if r != nil {
			r.Shuffle(len(items), swap)
			return
		}
		rand.Shuffle(len(items), swap)
	}
}

// Run plays the tournament and returns the winner. The caller's slice is not
// modified. Any chooser or announcer failure aborts the run.
func (e *Engine) Run(ctx context.Context, population []domain.Item) (domain.Item, error) {
	if len(population) == 0 {
		return domain.Item{}, ErrEmptyPopulation
	}

	current := make([]domain.Item, len(population))
	copy(current, population)
	e.shuffle(current)
	debug.Logf("tournament: initial order %v", domain.Names(current))

	round := 1
	for len(current) > 1 {
		e.emit(event.RoundStarted(round, len(current)))
		if err := e.announcer.Announce(ctx, e.RoundMessage(round, len(current))); err != nil {
			return domain.Item{}, fmt.Errorf("round %d: %w", round, err)
		}

		next, err := e.playRound(ctx, round, current)
		if err != nil {
			return domain.Item{}, fmt.Errorf("round %d: %w", round, err)
		}
		current = next
		round++
	}

	winner := current[0]
	e.emit(event.Winner(round-1, winner.Name))
	return winner, nil
}

func (e *Engine) playRound(ctx context.Context, round int, population []domain.Item) ([]domain.Item, error) {
	next := make([]domain.Item, 0, (len(population)+1)/2)
	for i := 0; i < len(population); i += 2 {
		if i+1 == len(population) {
			e.emit(event.Bye(round, population[i].Name))
			next = append(next, population[i])
			break
		}
		a, b := population[i], population[i+1]
		winner, err := e.chooser.Choose(ctx, a, b)
		if err != nil {
			return nil, err
		}
		loser := b
		if winner != a {
			loser = a
		}
		e.emit(event.Match(round, winner.Name, loser.Name))
		next = append(next, winner)
	}
	return next, nil
}

// Play runs the tournament and announces the winner.
func (e *Engine) Play(ctx context.Context, population []domain.Item) (domain.Item, error) {
	winner, err := e.Run(ctx, population)
	if err != nil {
		return domain.Item{}, err
	}
	if err := e.announcer.Announce(ctx, e.WinnerMessage(winner)); err != nil {
		return domain.Item{}, fmt.Errorf("announce winner: %w", err)
	}
	return winner, nil
}

// RoundMessage is the announcement shown at the start of a round.
func (e *Engine) RoundMessage(round, remaining int) string {
	return fmt.Sprintf("Round %d. %d %s left", round, remaining, e.config.PluralNoun)
}

// WinnerMessage is the final announcement.
func (e *Engine) WinnerMessage(winner domain.Item) string {
	return fmt.Sprintf("The winner is %s\n\nIt is the %s that brings most pain and suffering. GG",
		winner.Name, e.config.Noun)
}

func (e *Engine) emit(ev event.Event) {
	debug.Logf("tournament: %s", ev.Text())
	if e.onEvent != nil {
		e.onEvent(ev)
	}
}
