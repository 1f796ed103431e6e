package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type rematchChoice int

const (
	rematchYes rematchChoice = iota
	rematchNo
	rematchNewPlayers
)

type gameManager interface {
	RegisterPlayer(name string) (entity.Player, error)
	NextSymbol() entity.Symbol
	IsReady() bool
	Players() [entity.PlayerSlots]entity.Player
	CurrentPlayer() entity.Player
	Board() entity.Board
	Outcome() usecase.Outcome

	MakeTurn(ctx context.Context, x, y int) (usecase.Outcome, error)
	Rematch()
	ReplacePlayers()
	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

// Console plays sessions over a line-oriented text stream.
type Console struct {
	logger  *slog.Logger
	manager gameManager

	input    *bufio.Scanner
	out      io.Writer
	renderer *Renderer
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, color bool) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		manager: manager,

		input:    bufio.NewScanner(in),
		out:      out,
		renderer: NewRenderer(out, color),
	}
}

// Run - registers two players and plays rounds until the players quit.
// It returns apperror.ErrInputClosed when the input ends first.
func (that *Console) Run(ctx context.Context) error {
	for {
		if err := that.registerPlayers(ctx); err != nil {
			return err
		}

	rounds:
		for {
			if err := that.playRound(ctx); err != nil {
				return err
			}

			choice, err := that.askRematch(ctx)
			if err != nil {
				return err
			}

			switch choice {
			case rematchYes:
				that.manager.Rematch()
			case rematchNewPlayers:
				that.manager.ReplacePlayers()
				break rounds
			case rematchNo:
				return nil
			}
		}
	}
}

func (that *Console) registerPlayers(ctx context.Context) error {
	for !that.manager.IsReady() {
		symbol := that.manager.NextSymbol()
		slot, _ := symbol.Slot()

		name, err := that.readLine(ctx, fmt.Sprintf("Enter name for player%d(%s)", slot+1, that.renderer.Symbol(symbol)))
		if err != nil {
			return err
		}

		if _, err = that.manager.RegisterPlayer(name); err != nil {
			return fmt.Errorf("failed to register player: %w", err)
		}
	}

	return nil
}

func (that *Console) playRound(ctx context.Context) error {
	that.printBoard()

	for !that.manager.Outcome().IsFinished() {
		that.println(that.renderer.Player(that.manager.CurrentPlayer()) + "'s Turn!")

		x, err := that.readCoordinate(ctx, "Enter x coordinate")
		if err != nil {
			return err
		}

		y, err := that.readCoordinate(ctx, "Enter y coordinate")
		if err != nil {
			return err
		}

		if _, err = that.manager.MakeTurn(ctx, x, y); err != nil {
			switch {
			case errors.Is(err, apperror.ErrOutOfRange):
				that.println(fmt.Sprintf("(%d,%d) is not a proper place on the board!", x, y))
			case errors.Is(err, apperror.ErrCellOccupied):
				that.println(fmt.Sprintf("(%d, %d) is already taken!", x, y))
			default:
				return fmt.Errorf("failed to make turn: %w", err)
			}
		}

		that.printBoard()
	}

	that.announce(ctx, that.manager.Outcome())

	return nil
}

func (that *Console) announce(ctx context.Context, outcome usecase.Outcome) {
	if outcome.Won {
		that.println("The winner is " + that.renderer.Player(outcome.Winner))
	} else {
		that.println("It is a tie no winner!")
	}

	scoreboard, err := that.manager.Scoreboard(ctx)
	if err != nil {
		that.logger.Error("failed to get scoreboard", "error", err)
		return
	}

	players := that.manager.Players()
	first, second := players[entity.FirstSlot], players[entity.SecondSlot]
	that.println(fmt.Sprintf("Score: %s %d - %s %d, ties %d",
		first.Name(), scoreboard.Wins[first.Name()],
		second.Name(), scoreboard.Wins[second.Name()],
		scoreboard.Ties,
	))
}

// readCoordinate - re-prompts until the line is an integer on the board.
func (that *Console) readCoordinate(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := that.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		value, reason := parseCoordinate(line)
		if reason == "" {
			return value, nil
		}

		that.logger.Debug("invalid coordinate", "input", line, "reason", reason)
		that.println("Invalid entry! Reason: " + reason)
		that.printBoard()
	}
}

func parseCoordinate(line string) (int, string) {
	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, "Please enter an integer!"
	}

	if value < 0 || value >= entity.BoardSize {
		return 0, fmt.Sprintf("Integer must be from 0 to %d", entity.BoardSize-1)
	}

	return value, ""
}

func (that *Console) askRematch(ctx context.Context) (rematchChoice, error) {
	for {
		answer, err := that.readLine(ctx, "Rematch? y/n (p for new players)")
		if err != nil {
			return rematchNo, err
		}

		switch strings.ToLower(answer) {
		case "y":
			return rematchYes, nil
		case "n":
			return rematchNo, nil
		case "p":
			return rematchNewPlayers, nil
		}
	}
}

func (that *Console) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("console stopped: %w", err)
	}

	that.println(prompt)

	if !that.input.Scan() {
		if err := that.input.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", apperror.ErrInputClosed
	}

	return strings.TrimSpace(that.input.Text()), nil
}

func (that *Console) printBoard() {
	that.println(that.renderer.Board(that.manager.Board()))
}

func (that *Console) println(line string) {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
