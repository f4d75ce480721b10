// Package screen defines the terminal capability the tournament is played on:
// show a full-screen scene and block for the next discrete key event.
//
// Scenes are declarative. Show always clears and redraws the whole frame, so
// callers re-send the complete scene after every state change.
package screen

import (
	"context"
	"errors"
	"fmt"
)

// Key is a logical key event. Physical keys are mapped by the implementation.
type Key int

const (
	// KeyOther is any key without a meaning in the tournament.
	KeyOther Key = iota
	// KeyLeft moves the selection to the left panel.
	KeyLeft
	// KeyRight moves the selection to the right panel.
	KeyRight
	// KeyConfirm confirms the current selection or dismisses an announcement.
	KeyConfirm
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyConfirm:
		return "confirm"
	default:
		return "other"
	}
}

// Scene is a full-screen frame. Implemented by InfoScene and ChoiceScene.
type Scene interface {
	isScene()
}

// InfoScene is a single bordered panel with a centered message followed by a
// trailing instruction line.
type InfoScene struct {
	Message string
	Hint    string
}

// Panel is a bordered region with a title and wrapped, centered body text.
type Panel struct {
	Title string
	Body  string
	// Selected panels are drawn with a thick accent-colored border and a
	// bold title.
	Selected bool
}

// ChoiceScene is an outer frame titled with Prompt containing two panels
// side by side.
type ChoiceScene struct {
	Prompt string
	Left   Panel
	Right  Panel
}

func (InfoScene) isScene()   {}
func (ChoiceScene) isScene() {}

// Screen is an exclusively owned terminal.
type Screen interface {
	// Show clears the terminal and draws scene.
	Show(ctx context.Context, scene Scene) error
	// ReadKey blocks until the next key event arrives.
	ReadKey(ctx context.Context) (Key, error)
}

// ErrClosed is returned once the terminal has been released, e.g. after the
// user interrupted the program.
var ErrClosed = errors.New("terminal closed")

// InteractionError is a failure to draw to, or read from, the terminal.
type InteractionError struct {
	Op  string
	Err error
}

func (e *InteractionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InteractionError) Unwrap() error {
	return e.Err
}

// Interaction wraps err as an *InteractionError for op. Errors that already
// are interaction errors are returned unchanged.
func Interaction(op string, err error) error {
	if err == nil {
		return nil
	}
	var ie *InteractionError
	if errors.As(err, &ie) {
		return err
	}
	return &InteractionError{Op: op, Err: err}
}
