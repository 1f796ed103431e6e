package engine

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	// When: a registry is created
	registry := NewRegistry()

	// Then: both slots hold placeholder players
	expected := [entity.PlayerSlots]entity.Player{entity.DefaultPlayer(), entity.DefaultPlayer()}

	require.Equal(t, expected, registry.Players())
	assert.Equal(t, 0, registry.Registered())
}

func TestRegistry_Register(t *testing.T) {
	t.Run("Marks are handed out in registration order", func(t *testing.T) {
		// Given: an empty registry
		registry := NewRegistry()

		// When: two players register
		require.NoError(t, registry.Register("Alice"))
		require.NoError(t, registry.Register("Bob"))

		// Then: the first gets X and the second gets O
		expected := [entity.PlayerSlots]entity.Player{
			entity.NewPlayer("Alice", entity.FirstMark),
			entity.NewPlayer("Bob", entity.SecondMark),
		}

		require.Equal(t, expected, registry.Players())
		assert.Equal(t, 2, registry.Registered())
	})

	t.Run("Error on third registration", func(t *testing.T) {
		// Given: a full registry
		registry := NewRegistry()
		require.NoError(t, registry.Register("Alice"))
		require.NoError(t, registry.Register("Bob"))
		before := registry.Players()

		// When: a third player tries to register
		err := registry.Register("Carol")

		// Then: an ErrRegistrationFull error should be returned
		require.ErrorIs(t, err, apperror.ErrRegistrationFull)

		// And: the existing slots remain unchanged
		require.Equal(t, before, registry.Players())
		assert.Equal(t, 2, registry.Registered())
	})
}

func TestRegistry_PlayerFor(t *testing.T) {
	// Given: a full registry
	registry := NewRegistry()
	require.NoError(t, registry.Register("Alice"))
	require.NoError(t, registry.Register("Bob"))

	t.Run("Marks resolve to their owners", func(t *testing.T) {
		first, ok := registry.PlayerFor(entity.FirstMark)
		require.True(t, ok)
		assert.Equal(t, "Alice", first.Name())

		second, ok := registry.PlayerFor(entity.SecondMark)
		require.True(t, ok)
		assert.Equal(t, "Bob", second.Name())
	})

	t.Run("Empty never resolves", func(t *testing.T) {
		_, ok := registry.PlayerFor(entity.Empty)
		assert.False(t, ok)
	})
}

func TestRegistry_Reset(t *testing.T) {
	// Given: a full registry
	registry := NewRegistry()
	require.NoError(t, registry.Register("Alice"))
	require.NoError(t, registry.Register("Bob"))

	// When: the registry is reset
	registry.Reset()

	// Then: the slots are free again and the first newcomer gets X
	assert.Equal(t, 0, registry.Registered())
	require.NoError(t, registry.Register("Carol"))
	assert.Equal(t, entity.NewPlayer("Carol", entity.FirstMark), registry.Players()[entity.FirstSlot])
	assert.Equal(t, entity.DefaultPlayer(), registry.Players()[entity.SecondSlot])
}
