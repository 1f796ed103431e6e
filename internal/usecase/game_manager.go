package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameEngine interface {
	RegisterPlayer(name string) error
	RegisteredPlayers() int
	Players() [entity.PlayerSlots]entity.Player
	CurrentPlayer() entity.Player

	ApplyMove(x, y int) error
	IsComplete() bool
	Winner() (entity.Player, bool)
	Board() entity.Board

	ResetGame()
	ResetPlayers()
}

type scoreRepo interface {
	RecordWin(ctx context.Context, sessionID, playerName string) error
	RecordTie(ctx context.Context, sessionID string) error
	GetBySession(ctx context.Context, sessionID string) (*entity.Scoreboard, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

// Outcome describes the board after a move. A round is over once it is won or tied.
type Outcome struct {
	Winner entity.Player
	Won    bool
	Tie    bool
}

func (that Outcome) IsFinished() bool {
	return that.Won || that.Tie
}

// GameManager sequences one play session: registration, turns, rematches and the
// session scoreboard. Like the engine it drives, it is owned by a single caller;
// only Close may run concurrently with a turn.
type GameManager struct {
	logger    *slog.Logger
	sessionID string

	engine    gameEngine
	scoreRepo scoreRepo

	// mu orders score writes against Close, so a closed session is never recreated.
	mu     sync.Mutex
	closed bool
}

func NewGameManager(logger *slog.Logger, sessionID string, engine gameEngine, scoreRepo scoreRepo) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "gameManager", "session", sessionID),
		sessionID: sessionID,

		engine:    engine,
		scoreRepo: scoreRepo,
	}
}

func (that *GameManager) SessionID() string {
	return that.sessionID
}

func (that *GameManager) RegisterPlayer(name string) (entity.Player, error) {
	if err := that.engine.RegisterPlayer(name); err != nil {
		return entity.Player{}, fmt.Errorf("failed to register player: %w", err)
	}

	player := that.engine.Players()[that.engine.RegisteredPlayers()-1]
	that.logger.Info("player registered", "player", player.Name(), "mark", player.Symbol().String())

	return player, nil
}

// NextSymbol - the mark the next registrant will receive, Empty when both slots are taken.
func (that *GameManager) NextSymbol() entity.Symbol {
	return entity.SymbolForSlot(that.engine.RegisteredPlayers())
}

func (that *GameManager) IsReady() bool {
	return that.engine.RegisteredPlayers() == entity.PlayerSlots
}

func (that *GameManager) Players() [entity.PlayerSlots]entity.Player {
	return that.engine.Players()
}

func (that *GameManager) CurrentPlayer() entity.Player {
	return that.engine.CurrentPlayer()
}

func (that *GameManager) Board() entity.Board {
	return that.engine.Board()
}

// Outcome - a win takes precedence over a full board.
func (that *GameManager) Outcome() Outcome {
	if winner, ok := that.engine.Winner(); ok {
		return Outcome{Winner: winner, Won: true}
	}

	return Outcome{Tie: that.engine.IsComplete()}
}

// MakeTurn - applies the current player's move and records the round when it ends it.
func (that *GameManager) MakeTurn(ctx context.Context, x, y int) (Outcome, error) {
	if !that.IsReady() {
		return Outcome{}, apperror.ErrGameIsNotStarted
	}

	if that.Outcome().IsFinished() {
		return Outcome{}, apperror.ErrGameFinished
	}

	player := that.engine.CurrentPlayer()
	if err := that.engine.ApplyMove(x, y); err != nil {
		return Outcome{}, fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("turn made", "player", player.Name(), "x", x, "y", y)

	outcome := that.Outcome()
	if outcome.IsFinished() {
		that.recordOutcome(ctx, outcome)
	}

	return outcome, nil
}

func (that *GameManager) recordOutcome(ctx context.Context, outcome Outcome) {
	log := that.logger.With("method", "recordOutcome")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || ctx.Err() != nil {
		log.Warn("session closed, round not recorded")
		return
	}

	if outcome.Won {
		if err := that.scoreRepo.RecordWin(ctx, that.sessionID, outcome.Winner.Name()); err != nil {
			log.Error("failed to record win", "error", err)
			return
		}

		log.Info("round won", "winner", outcome.Winner.Name())
		return
	}

	if err := that.scoreRepo.RecordTie(ctx, that.sessionID); err != nil {
		log.Error("failed to record tie", "error", err)
		return
	}

	log.Info("round tied")
}

// Rematch - clears the board, keeping both players.
func (that *GameManager) Rematch() {
	that.engine.ResetGame()
	that.logger.Info("rematch started")
}

// ReplacePlayers - frees both player slots and clears the board.
func (that *GameManager) ReplacePlayers() {
	that.engine.ResetPlayers()
	that.engine.ResetGame()
	that.logger.Info("players reset")
}

func (that *GameManager) Scoreboard(ctx context.Context) (*entity.Scoreboard, error) {
	scoreboard, err := that.scoreRepo.GetBySession(ctx, that.sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return scoreboard, nil
}

// Close - drops the session's scoreboard so nothing outlives the run.
func (that *GameManager) Close(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true

	if err := that.scoreRepo.DeleteBySession(ctx, that.sessionID); err != nil {
		return fmt.Errorf("failed to delete scoreboard: %w", err)
	}

	return nil
}
