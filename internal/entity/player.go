package entity

import "fmt"

const DefaultPlayerName = "None"

// Player is bound to its symbol for life; fields are only set through NewPlayer.
type Player struct {
	name   string
	symbol Symbol
}

func NewPlayer(name string, symbol Symbol) Player {
	return Player{
		name:   name,
		symbol: symbol,
	}
}

// DefaultPlayer - the occupant of an unregistered slot.
func DefaultPlayer() Player {
	return NewPlayer(DefaultPlayerName, Empty)
}

func (that Player) Name() string {
	return that.name
}

func (that Player) Symbol() Symbol {
	return that.symbol
}

func (that Player) IsDefault() bool {
	return that.symbol == Empty
}

func (that Player) String() string {
	return fmt.Sprintf("%s(%s)", that.name, that.symbol)
}
