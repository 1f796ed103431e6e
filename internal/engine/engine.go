package engine

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Engine owns the board, the turn pointer and the player registry.
// It keeps no game phase: completion and winner are derived from the board on demand.
// An Engine is not safe for concurrent use.
type Engine struct {
	registry *Registry
	turn     int
	board    entity.Board
}

// New - creates an engine with an empty board and no players.
func New() *Engine {
	return &Engine{
		registry: NewRegistry(),
		turn:     entity.FirstSlot,
	}
}

// RegisterPlayer - binds name to the next free slot.
func (that *Engine) RegisterPlayer(name string) error {
	if err := that.registry.Register(name); err != nil {
		return fmt.Errorf("failed to register player: %w", err)
	}

	return nil
}

func (that *Engine) Players() [entity.PlayerSlots]entity.Player {
	return that.registry.Players()
}

func (that *Engine) RegisteredPlayers() int {
	return that.registry.Registered()
}

// CurrentPlayer - returns the player whose turn it is.
func (that *Engine) CurrentPlayer() entity.Player {
	return that.registry.Players()[that.turn]
}

func (that *Engine) Turn() int {
	return that.turn
}

// ApplyMove - places the current player's mark in column x of row y and passes the turn.
// A rejected move leaves the engine untouched. The caller checks for a winner separately.
func (that *Engine) ApplyMove(x, y int) error {
	if err := that.validateMove(x, y); err != nil {
		return err
	}

	that.board[y][x] = that.CurrentPlayer().Symbol()
	that.turn = toggleTurn(that.turn)

	return nil
}

// validateMove - checks if the move is valid.
func (that *Engine) validateMove(x, y int) error {
	if !entity.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfRange, x, y)
	}

	if that.board.At(x, y) != entity.Empty {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, x, y)
	}

	return nil
}

// IsComplete - reports a full board. A complete board without a winner is a tie.
func (that *Engine) IsComplete() bool {
	return that.board.IsFull()
}

// Winner - returns the player owning a uniform line, if any.
func (that *Engine) Winner() (entity.Player, bool) {
	symbol, ok := winningSymbol(&that.board)
	if !ok {
		return entity.Player{}, false
	}

	return that.registry.PlayerFor(symbol)
}

// Board - returns a copy of the grid.
func (that *Engine) Board() entity.Board {
	return that.board
}

// ResetGame - clears the board for a rematch between the same players.
func (that *Engine) ResetGame() {
	that.board = entity.Board{}
	that.turn = entity.FirstSlot
}

// ResetPlayers - frees both slots. The board is left as is.
func (that *Engine) ResetPlayers() {
	that.registry.Reset()
}

func toggleTurn(turn int) int {
	if turn == entity.FirstSlot {
		return entity.SecondSlot
	}
	return entity.FirstSlot
}
