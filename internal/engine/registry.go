package engine

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Registry holds the two player slots. The n-th registrant gets the n-th mark.
type Registry struct {
	players    [entity.PlayerSlots]entity.Player
	registered int
}

// NewRegistry - creates a registry with both slots holding the default player.
func NewRegistry() *Registry {
	registry := &Registry{}
	registry.Reset()

	return registry
}

// Register - binds name to the next free slot and its mark.
func (that *Registry) Register(name string) error {
	if that.registered >= entity.PlayerSlots {
		return fmt.Errorf("%w: cannot register %q", apperror.ErrRegistrationFull, name)
	}

	that.players[that.registered] = entity.NewPlayer(name, entity.SymbolForSlot(that.registered))
	that.registered++

	return nil
}

// Players - returns a copy of both slots in registration order.
func (that *Registry) Players() [entity.PlayerSlots]entity.Player {
	return that.players
}

// Registered - returns how many slots are taken.
func (that *Registry) Registered() int {
	return that.registered
}

// PlayerFor - returns the player bound to symbol. Empty never resolves.
func (that *Registry) PlayerFor(symbol entity.Symbol) (entity.Player, bool) {
	slot, ok := symbol.Slot()
	if !ok {
		return entity.Player{}, false
	}

	return that.players[slot], true
}

// Reset - returns both slots to the default player.
func (that *Registry) Reset() {
	for i := range that.players {
		that.players[i] = entity.DefaultPlayer()
	}
	that.registered = 0
}
