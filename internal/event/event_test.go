package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		wantKind Kind
		wantText string
	}{
		{"round", RoundStarted(1, 8), KindRoundStarted, "round 1 started with 8 entrants"},
		{"match", Match(2, "C++", "Go"), KindMatch, "round 2: C++ beat Go"},
		{"bye", Bye(1, "Perl"), KindBye, "round 1: Perl advanced without a match"},
		{"winner", Winner(3, "PHP"), KindWinner, "winner: PHP"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantKind, tc.event.Kind)
			assert.Equal(t, tc.wantText, tc.event.Text())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "match", KindMatch.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestRecorder(t *testing.T) {
	var a Recorder
	var h Handler = a.Handle

	h(RoundStarted(1, 2))
	h(Match(1, "A", "B"))

	require.Len(t, a.Events(), 2)
	assert.Equal(t, KindRoundStarted, a.Events()[0].Kind)
	assert.Equal(t, "A", a.Events()[1].Winner)
	assert.Equal(t, "B", a.Events()[1].Loser)
}
