package choice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexander-akhmetov/paintourney/internal/domain"
	"github.com/alexander-akhmetov/paintourney/internal/screen"
)

var (
	itemA = domain.Item{Name: "C++", Description: "templates all the way down"}
	itemB = domain.Item{Name: "JavaScript", Description: "undefined is not a function"}
)

const (
	left    = screen.KeyLeft
	right   = screen.KeyRight
	confirm = screen.KeyConfirm
	other   = screen.KeyOther
)

func TestPairApply(t *testing.T) {
	tests := []struct {
		name          string
		keys          []screen.Key
		wantSelection Selection
		wantConfirmed bool
	}{
		{"initial", nil, NoSelection, false},
		{"left", []screen.Key{left}, LeftSelected, false},
		{"right", []screen.Key{right}, RightSelected, false},
		{"left then right", []screen.Key{left, right}, RightSelected, false},
		{"confirm without selection is ignored", []screen.Key{confirm}, NoSelection, false},
		{"other key is ignored", []screen.Key{left, other}, LeftSelected, false},
		{"confirm left", []screen.Key{left, confirm}, LeftSelected, true},
		{"confirm right", []screen.Key{right, confirm}, RightSelected, true},
		{"confirmed pair is frozen", []screen.Key{left, confirm, right}, LeftSelected, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPair(itemA, itemB)
			for _, k := range tc.keys {
				p = p.Apply(k)
			}
			assert.Equal(t, tc.wantSelection, p.Selection)
			assert.Equal(t, tc.wantConfirmed, p.Confirmed())
		})
	}
}

func TestPairWinner(t *testing.T) {
	p := NewPair(itemA, itemB)
	_, ok := p.Winner()
	assert.False(t, ok)

	w, ok := p.Apply(right).Apply(confirm).Winner()
	require.True(t, ok)
	assert.Equal(t, itemB, w)

	w, ok = p.Apply(left).Apply(confirm).Winner()
	require.True(t, ok)
	assert.Equal(t, itemA, w)
}

func TestPairScene(t *testing.T) {
	s := NewPair(itemA, itemB).Apply(left).Scene("pick")

	assert.Equal(t, "pick", s.Prompt)
	assert.Equal(t, screen.Panel{Title: "C++", Body: "templates all the way down", Selected: true}, s.Left)
	assert.Equal(t, screen.Panel{Title: "JavaScript", Body: "undefined is not a function"}, s.Right)
}

func TestSelectionString(t *testing.T) {
	assert.Equal(t, "none", NoSelection.String())
	assert.Equal(t, "left", LeftSelected.String())
	assert.Equal(t, "right", RightSelected.String())
}

func TestChooserReturnsLastMoveBeforeConfirm(t *testing.T) {
	tests := []struct {
		name string
		keys []screen.Key
		want domain.Item
	}{
		{"left", []screen.Key{left, confirm}, itemA},
		{"right", []screen.Key{right, confirm}, itemB},
		{"changed mind", []screen.Key{left, right, left, right, confirm}, itemB},
		{"early confirm ignored", []screen.Key{confirm, confirm, left, confirm}, itemA},
		{"noise ignored", []screen.Key{other, right, other, confirm}, itemB},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scr := screen.NewMockScreen(tc.keys...)
			c := NewChooser(scr, "")

			got, err := c.Choose(context.Background(), itemA, itemB)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Empty(t, scr.Keys, "chooser must stop at the confirming key")
		})
	}
}

func TestChooserRedrawsBeforeEveryRead(t *testing.T) {
	scr := screen.NewMockScreen(other, left, right, confirm)
	c := NewChooser(scr, "")

	_, err := c.Choose(context.Background(), itemA, itemB)
	require.NoError(t, err)

	scenes := scr.ChoiceScenes()
	require.Len(t, scenes, 4)
	assert.Equal(t, scr.KeyReads, len(scenes))
	for _, s := range scenes {
		assert.Equal(t, DefaultPrompt, s.Prompt)
	}

	// none, none (after other), left, right
	assert.False(t, scenes[0].Left.Selected || scenes[0].Right.Selected)
	assert.False(t, scenes[1].Left.Selected || scenes[1].Right.Selected)
	assert.True(t, scenes[2].Left.Selected)
	assert.False(t, scenes[2].Right.Selected)
	assert.True(t, scenes[3].Right.Selected)
	assert.False(t, scenes[3].Left.Selected)
}

func TestChooserConfirmWithoutMoveKeepsBlocking(t *testing.T) {
	scr := screen.NewMockScreen(confirm, confirm)
	c := NewChooser(scr, "")

	_, err := c.Choose(context.Background(), itemA, itemB)
	require.Error(t, err)
	assert.ErrorIs(t, err, screen.ErrScriptExhausted)
	assert.Equal(t, 3, scr.KeyReads)
}

func TestChooserErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("draw failure", func(t *testing.T) {
		scr := screen.NewMockScreen(left, confirm)
		scr.ShowFunc = func(screen.Scene) error { return boom }

		_, err := NewChooser(scr, "").Choose(context.Background(), itemA, itemB)
		var ie *screen.InteractionError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "draw choice", ie.Op)
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, scr.KeyReads)
	})

	t.Run("read failure", func(t *testing.T) {
		scr := screen.NewMockScreen()
		scr.ReadKeyFunc = func() (screen.Key, error) { return screen.KeyOther, screen.ErrClosed }

		_, err := NewChooser(scr, "").Choose(context.Background(), itemA, itemB)
		var ie *screen.InteractionError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "read key", ie.Op)
		assert.ErrorIs(t, err, screen.ErrClosed)
	})
}

func TestAnnouncer(t *testing.T) {
	t.Run("waits for confirm", func(t *testing.T) {
		scr := screen.NewMockScreen(left, other, right, confirm, left)
		a := NewAnnouncer(scr, "")

		require.NoError(t, a.Announce(context.Background(), "Round 1. 4 languages left"))

		infos := scr.InfoScenes()
		require.Len(t, infos, 4)
		for _, s := range infos {
			assert.Equal(t, "Round 1. 4 languages left", s.Message)
			assert.Equal(t, DefaultHint, s.Hint)
		}
		assert.Equal(t, []screen.Key{left}, scr.Keys)
	})

	t.Run("custom hint", func(t *testing.T) {
		scr := screen.NewMockScreen(confirm)
		require.NoError(t, NewAnnouncer(scr, "Press space").Announce(context.Background(), "hi"))
		assert.Equal(t, "Press space", scr.InfoScenes()[0].Hint)
	})

	t.Run("read failure", func(t *testing.T) {
		scr := screen.NewMockScreen()
		err := NewAnnouncer(scr, "").Announce(context.Background(), "hi")
		var ie *screen.InteractionError
		require.ErrorAs(t, err, &ie)
		assert.ErrorIs(t, err, screen.ErrScriptExhausted)
	})
}
