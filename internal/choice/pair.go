// Package choice implements the interactive pieces of a tournament: the
// head-to-head chooser and the announcement screen.
package choice

import (
	"github.com/alexander-akhmetov/paintourney/internal/domain"
	"github.com/alexander-akhmetov/paintourney/internal/screen"
)

// Selection is the currently highlighted side of a pair.
type Selection int

const (
	// NoSelection is the initial state; confirm is ignored until a side is picked.
	NoSelection Selection = iota
	// LeftSelected highlights the left item.
	LeftSelected
	// RightSelected highlights the right item.
	RightSelected
)

func (s Selection) String() string {
	switch s {
	case LeftSelected:
		return "left"
	case RightSelected:
		return "right"
	default:
		return "none"
	}
}

// Pair is the selection state of one head-to-head comparison.
type Pair struct {
	Left      domain.Item
	Right     domain.Item
	Selection Selection
	confirmed bool
}

// NewPair returns a pair with nothing selected.
func NewPair(left, right domain.Item) Pair {
	return Pair{Left: left, Right: right}
}

// Apply returns the state after key. Moves always switch the selection;
// confirm only takes effect once a side is selected; everything else is
// ignored. A confirmed pair no longer changes.
func (p Pair) Apply(key screen.Key) Pair {
	if p.confirmed {
		return p
	}
	switch key {
	case screen.KeyLeft:
		p.Selection = LeftSelected
	case screen.KeyRight:
		p.Selection = RightSelected
	case screen.KeyConfirm:
		if p.Selection != NoSelection {
			p.confirmed = true
		}
	}
	return p
}

// Confirmed reports whether a choice has been made.
func (p Pair) Confirmed() bool {
	return p.confirmed
}

// Winner returns the chosen item. ok is false until the pair is confirmed.
func (p Pair) Winner() (domain.Item, bool) {
	if !p.confirmed {
		return domain.Item{}, false
	}
	if p.Selection == LeftSelected {
		return p.Left, true
	}
	return p.Right, true
}

// Scene renders the pair as a choice scene titled with prompt.
func (p Pair) Scene(prompt string) screen.ChoiceScene {
	return screen.ChoiceScene{
		Prompt: prompt,
		Left: screen.Panel{
			Title:    p.Left.Name,
			Body:     p.Left.Description,
			Selected: p.Selection == LeftSelected,
		},
		Right: screen.Panel{
			Title:    p.Right.Name,
			Body:     p.Right.Description,
			Selected: p.Selection == RightSelected,
		},
	}
}
