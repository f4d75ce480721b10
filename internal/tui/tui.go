// Package tui implements the terminal user interface using bubbletea and the
// paintourney command line.
package tui

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	dbg "github.com/alexander-akhmetov/paintourney/internal/debug"
	"github.com/alexander-akhmetov/paintourney/internal/screen"
)

// ErrInterrupted is returned by Screen calls after the user pressed a quit
// key.
var ErrInterrupted = fmt.Errorf("interrupted: %w", screen.ErrClosed)

// keyBuffer bounds key presses queued between two ReadKey calls. Presses
// beyond it are dropped so Update never blocks.
const keyBuffer = 64

// Terminal is the screen.Screen backed by a running bubbletea program.
// Show hands scenes to the program; ReadKey waits for key presses forwarded
// by the model.
type Terminal struct {
	send func(tea.Msg)
	keys chan screen.Key

	closeOnce sync.Once
	closed    chan struct{}
	cause     error
}

var _ screen.Screen = (*Terminal)(nil)

func newTerminal(send func(tea.Msg)) *Terminal {
	return &Terminal{
		send:   send,
		keys:   make(chan screen.Key, keyBuffer),
		closed: make(chan struct{}),
	}
}

// Show replaces the current frame with scene.
func (t *Terminal) Show(ctx context.Context, scene screen.Scene) error {
	select {
	case <-t.closed:
		return t.cause
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	t.send(sceneMsg{scene: scene})
	return nil
}

// ReadKey blocks until the next key press.
func (t *Terminal) ReadKey(ctx context.Context) (screen.Key, error) {
	select {
	case k := <-t.keys:
		return k, nil
	case <-t.closed:
		return screen.KeyOther, t.cause
	case <-ctx.Done():
		return screen.KeyOther, ctx.Err()
	}
}

// push queues a key press without blocking.
func (t *Terminal) push(k screen.Key) {
	select {
	case t.keys <- k:
	default:
		dbg.Logf("tui: key buffer full, dropping %s", k)
	}
}

// close releases every blocked and future Show/ReadKey call with cause.
func (t *Terminal) close(cause error) {
	t.closeOnce.Do(func() {
		t.cause = cause
		close(t.closed)
	})
}

// PlayFunc runs on its own goroutine while the terminal is owned by the UI.
type PlayFunc func(ctx context.Context, s screen.Screen) error

// Run takes over the terminal (alt screen, raw mode), calls play with a
// Screen drawing on it and restores the terminal when play returns, the user
// quits, ctx is canceled or play panics.
func Run(ctx context.Context, opts Options, play PlayFunc, progOpts ...tea.ProgramOption) error {
	// a failing play cancels gctx, which stops the program as well
	g, gctx := errgroup.WithContext(ctx)

	var program *tea.Program
	term := newTerminal(func(msg tea.Msg) { program.Send(msg) })

	model := NewModel(opts, term.push)
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(gctx)}, progOpts...)
	program = tea.NewProgram(model, progOpts...)

	g.Go(func() error {
		defer program.Quit()
		return guard(gctx, term, play)
	})

	final, runErr := program.Run()

	cause := screen.ErrClosed
	if m, ok := final.(Model); ok && m.Interrupted() {
		cause = ErrInterrupted
	}
	term.close(cause)
	err := g.Wait()

	// a failed program explains a closed screen better than play's error
	if runErr != nil && (err == nil || errors.Is(err, screen.ErrClosed) || errors.Is(err, context.Canceled)) {
		return screen.Interaction("run terminal", runErr)
	}
	return err
}

func guard(ctx context.Context, s screen.Screen, play PlayFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			dbg.Logf("tui: play panicked: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return play(ctx, s)
}
