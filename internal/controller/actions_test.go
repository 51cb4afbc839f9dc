package controller

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "openheader.dev/pkg/openheader/internal/model"
)

func noopHandler(context.Context) error { return nil }

func TestActionRegistry_AddAndMatch(t *testing.T) {
	registry := newActionRegistry()

	id, err := registry.add(m.Action{Name: "A", Label: "Open _Header/Body", Accelerator: " ctrl+r "}, noopHandler)
	require.NoError(t, err)
	assert.NotZero(t, id)

	registered, ok := registry.match(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.True(t, ok)
	assert.Equal(t, "A", registered.action.Name)
	assert.Equal(t, "ctrl+r", registered.action.Accelerator)
	assert.Equal(t, "Open Header/Body", registered.binding.Help().Desc)

	_, ok = registry.match(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.False(t, ok)
}

func TestActionRegistry_Errors(t *testing.T) {
	registry := newActionRegistry()

	_, err := registry.add(m.Action{Name: "A"}, noopHandler)
	require.Error(t, err, "an action needs an accelerator")

	_, err = registry.add(m.Action{Name: "A", Accelerator: "ctrl+r"}, noopHandler)
	require.NoError(t, err)

	_, err = registry.add(m.Action{Name: "B", Accelerator: "ctrl+r"}, noopHandler)
	require.ErrorIs(t, err, ErrAcceleratorInUse)

	require.ErrorIs(t, registry.remove(42), ErrUnknownMergeID)
}

func TestActionRegistry_RemoveFreesAccelerator(t *testing.T) {
	registry := newActionRegistry()

	first, err := registry.add(m.Action{Name: "A", Accelerator: "ctrl+r"}, noopHandler)
	require.NoError(t, err)
	require.NoError(t, registry.remove(first))

	_, ok := registry.match(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.False(t, ok)

	second, err := registry.add(m.Action{Name: "B", Accelerator: "ctrl+r"}, noopHandler)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "merge ids are not reused")
}

func TestActionRegistry_ListKeepsRegistrationOrder(t *testing.T) {
	registry := newActionRegistry()

	for _, accel := range []string{"ctrl+a", "ctrl+b", "ctrl+c", "ctrl+d"} {
		_, err := registry.add(m.Action{Name: accel, Accelerator: accel}, noopHandler)
		require.NoError(t, err)
	}

	var names []string
	for _, registered := range registry.list() {
		names = append(names, registered.action.Name)
	}

	assert.Equal(t, []string{"ctrl+a", "ctrl+b", "ctrl+c", "ctrl+d"}, names)
}

func TestActionRegistry_RejectsSessionKeys(t *testing.T) {
	for _, accelerator := range []string{"q", "esc", "ctrl+c", "tab", "shift+tab", " tab "} {
		t.Run(accelerator, func(t *testing.T) {
			registry := newActionRegistry()

			_, err := registry.add(m.Action{Name: "A", Accelerator: accelerator}, noopHandler)
			require.ErrorIs(t, err, ErrAcceleratorInUse)
			assert.Empty(t, registry.list())
		})
	}
}
