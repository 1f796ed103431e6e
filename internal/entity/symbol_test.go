package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbol_Slot(t *testing.T) {
	t.Run("Player marks map to their registry slots", func(t *testing.T) {
		// When: looking up the slots of both marks
		first, firstOK := FirstMark.Slot()
		second, secondOK := SecondMark.Slot()

		// Then: they should map to slots 0 and 1
		assert.True(t, firstOK)
		assert.Equal(t, FirstSlot, first)
		assert.True(t, secondOK)
		assert.Equal(t, SecondSlot, second)
	})

	t.Run("Empty has no slot", func(t *testing.T) {
		// When: looking up the slot of an empty cell
		_, ok := Empty.Slot()

		// Then: the lookup should fail
		assert.False(t, ok)
	})

	t.Run("SymbolForSlot is the inverse of Slot", func(t *testing.T) {
		for _, symbol := range []Symbol{FirstMark, SecondMark} {
			slot, _ := symbol.Slot()
			assert.Equal(t, symbol, SymbolForSlot(slot))
		}

		assert.Equal(t, Empty, SymbolForSlot(PlayerSlots))
	})
}

func TestSymbol_String(t *testing.T) {
	assert.Equal(t, "X", FirstMark.String())
	assert.Equal(t, "O", SecondMark.String())
	assert.Equal(t, " ", Empty.String())
}

func TestSymbol_ZeroValueIsEmpty(t *testing.T) {
	// Given: an uninitialized symbol and board
	var symbol Symbol
	var board Board

	// Then: both should read as empty
	assert.Equal(t, Empty, symbol)
	assert.Equal(t, Empty, board.At(1, 2))
}
