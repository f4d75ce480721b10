package screen

import (
	"context"
	"errors"
	"sync"
)

// ErrScriptExhausted is returned by MockScreen.ReadKey when no scripted keys
// are left.
var ErrScriptExhausted = errors.New("mock screen: no more scripted keys")

// MockScreen implements Screen for testing. It replays a scripted key
// sequence and records every scene shown.
type MockScreen struct {
	mu sync.Mutex

	Keys []Key

	ShowFunc    func(scene Scene) error
	ReadKeyFunc func() (Key, error)

	Scenes   []Scene
	KeyReads int
}

var _ Screen = (*MockScreen)(nil)

// NewMockScreen creates a MockScreen that replays keys in order.
func NewMockScreen(keys ...Key) *MockScreen {
	return &MockScreen{
		Keys:   keys,
		Scenes: make([]Scene, 0),
	}
}

// Show records the scene.
func (m *MockScreen) Show(_ context.Context, scene Scene) error {
	m.mu.Lock()
	m.Scenes = append(m.Scenes, scene)
	m.mu.Unlock()

	if m.ShowFunc != nil {
		return m.ShowFunc(scene)
	}
	return nil
}

// ReadKey returns the next scripted key.
func (m *MockScreen) ReadKey(ctx context.Context) (Key, error) {
	if err := ctx.Err(); err != nil {
		return KeyOther, err
	}

	m.mu.Lock()
	m.KeyReads++
	if m.ReadKeyFunc != nil {
		m.mu.Unlock()
		return m.ReadKeyFunc()
	}
	defer m.mu.Unlock()

	if len(m.Keys) == 0 {
		return KeyOther, ErrScriptExhausted
	}
	k := m.Keys[0]
	m.Keys = m.Keys[1:]
	return k, nil
}

// LastScene returns the most recently shown scene, or nil.
func (m *MockScreen) LastScene() Scene {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Scenes) == 0 {
		return nil
	}
	return m.Scenes[len(m.Scenes)-1]
}

// ChoiceScenes returns the recorded choice scenes in order.
func (m *MockScreen) ChoiceScenes() []ChoiceScene {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []ChoiceScene
	for _, s := range m.Scenes {
		if cs, ok := s.(ChoiceScene); ok {
			out = append(out, cs)
		}
	}
	return out
}

// InfoScenes returns the recorded info scenes in order.
func (m *MockScreen) InfoScenes() []InfoScene {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []InfoScene
	for _, s := range m.Scenes {
		if is, ok := s.(InfoScene); ok {
			out = append(out, is)
		}
	}
	return out
}
