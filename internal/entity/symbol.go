package entity

// Symbol is the mark occupying a board cell.
type Symbol uint8

const (
	Empty Symbol = iota
	FirstMark
	SecondMark
)

const (
	FirstSlot  = 0
	SecondSlot = 1

	PlayerSlots = 2
)

func (that Symbol) String() string {
	switch that {
	case FirstMark:
		return "X"
	case SecondMark:
		return "O"
	default:
		return " "
	}
}

// Slot - returns the registry slot bound to the symbol. Empty has no slot.
func (that Symbol) Slot() (int, bool) {
	switch that {
	case FirstMark:
		return FirstSlot, true
	case SecondMark:
		return SecondSlot, true
	default:
		return 0, false
	}
}

// SymbolForSlot - returns the symbol a player registered into slot receives.
func SymbolForSlot(slot int) Symbol {
	switch slot {
	case FirstSlot:
		return FirstMark
	case SecondSlot:
		return SecondMark
	default:
		return Empty
	}
}
