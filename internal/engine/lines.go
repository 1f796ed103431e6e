package engine

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

type lineKind uint8

const (
	lineRow lineKind = iota
	lineColumn
	lineDiagonal
	lineAntiDiagonal
)

// line - a uniform line found on the board. index is the row or column number, 0 for diagonals.
type line struct {
	kind   lineKind
	index  int
	symbol entity.Symbol
}

// winningSymbol - returns the mark of the first uniform non-empty line.
func winningSymbol(board *entity.Board) (entity.Symbol, bool) {
	found, ok := winningLine(board)
	if !ok {
		return entity.Empty, false
	}

	return found.symbol, true
}

// winningLine - scans rows, columns, the main diagonal and the anti-diagonal, in that
// order, and returns the first uniform non-empty line.
func winningLine(board *entity.Board) (line, bool) {
	scans := []func(*entity.Board) (line, bool){
		checkRows,
		checkColumns,
		checkDiagonal,
		checkAntiDiagonal,
	}

	for _, scan := range scans {
		if found, ok := scan(board); ok {
			return found, true
		}
	}

	return line{}, false
}

func checkRows(board *entity.Board) (line, bool) {
	for y := 0; y < entity.BoardSize; y++ {
		if symbol, ok := uniformLine(board, func(i int) (int, int) { return i, y }); ok {
			return line{kind: lineRow, index: y, symbol: symbol}, true
		}
	}

	return line{}, false
}

func checkColumns(board *entity.Board) (line, bool) {
	for x := 0; x < entity.BoardSize; x++ {
		if symbol, ok := uniformLine(board, func(i int) (int, int) { return x, i }); ok {
			return line{kind: lineColumn, index: x, symbol: symbol}, true
		}
	}

	return line{}, false
}

// checkDiagonal - (0,0), (1,1), (2,2).
func checkDiagonal(board *entity.Board) (line, bool) {
	symbol, ok := uniformLine(board, func(i int) (int, int) { return i, i })
	if !ok {
		return line{}, false
	}

	return line{kind: lineDiagonal, symbol: symbol}, true
}

// checkAntiDiagonal - walks row i at column size-1-i: (2,0), (1,1), (0,2).
func checkAntiDiagonal(board *entity.Board) (line, bool) {
	symbol, ok := uniformLine(board, func(i int) (int, int) { return entity.BoardSize - 1 - i, i })
	if !ok {
		return line{}, false
	}

	return line{kind: lineAntiDiagonal, symbol: symbol}, true
}

// uniformLine - cell maps the i-th step of a line to its (x, y). The line matches when
// every cell equals the first one and the first one is not empty.
func uniformLine(board *entity.Board, cell func(i int) (int, int)) (entity.Symbol, bool) {
	first := board.At(cell(0))
	if first == entity.Empty {
		return entity.Empty, false
	}

	for i := 1; i < entity.BoardSize; i++ {
		if board.At(cell(i)) != first {
			return entity.Empty, false
		}
	}

	return first, true
}
