package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	firstMarkColor  = "1" // red
	secondMarkColor = "4" // blue
)

// Renderer draws boards and players, colouring marks when the output supports it.
type Renderer struct {
	output *termenv.Output
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{output: termenv.NewOutput(w, opts...)}
}

// Board - a header of column indices, then one |c|c|c| line per row followed by its index.
func (that *Renderer) Board(board entity.Board) string {
	var sb strings.Builder

	sb.WriteString(" ")
	for x := 0; x < entity.BoardSize; x++ {
		if x > 0 {
			sb.WriteString("|")
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteString(" \n")

	for y, row := range board {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(that.Symbol(cell))
			sb.WriteString("|")
		}
		sb.WriteString(strconv.Itoa(y))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *Renderer) Symbol(symbol entity.Symbol) string {
	switch symbol {
	case entity.FirstMark:
		return that.output.String(symbol.String()).Foreground(that.output.Color(firstMarkColor)).Bold().String()
	case entity.SecondMark:
		return that.output.String(symbol.String()).Foreground(that.output.Color(secondMarkColor)).Bold().String()
	default:
		return symbol.String()
	}
}

// Player - Name(X).
func (that *Renderer) Player(player entity.Player) string {
	return player.Name() + "(" + that.Symbol(player.Symbol()) + ")"
}
