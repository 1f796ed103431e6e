package entity

const BoardSize = 3

// Board is a row-major grid addressed as board[y][x].
type Board [BoardSize][BoardSize]Symbol

func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// At - returns the symbol in column x of row y. Callers check InBounds first.
func (that *Board) At(x, y int) Symbol {
	return that[y][x]
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}
