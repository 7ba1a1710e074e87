package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	Size  = 3
	Cells = Size * Size
)

type Status uint8

const (
	InProgress Status = iota
	Win
	Draw
)

func (that Status) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Outcome is the result of a board: Winner is set only when Status is Win.
type Outcome struct {
	Status Status
	Winner Cell
}

func (that Outcome) IsTerminal() bool {
	return that.Status != InProgress
}

// Line is three squares that win when owned by a single player.
type Line [Size]Move

// WinLines are scanned in this order: columns, rows, descending diagonal, ascending diagonal.
var WinLines = [...]Line{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Board is a 3x3 grid. It is a plain value: assigning a Board copies every square.
type Board struct {
	cells    [Size][Size]Cell
	occupied int
}

func NewBoard() Board {
	return Board{}
}

// Mark puts player on an empty square. The board is left untouched on error.
func (that *Board) Mark(row, col int, player Cell) error {
	move := Move{Row: row, Col: col}

	if !move.inBounds() {
		return fmt.Errorf("%w: square (%d, %d) is out of range", apperror.ErrInvalidMove, row, col)
	}

	if !player.IsPlayer() {
		return fmt.Errorf("%w: unknown player %d", apperror.ErrInvalidMove, player)
	}

	if that.cells[row][col] != Empty {
		return fmt.Errorf("%w: square (%d, %d) is already occupied", apperror.ErrInvalidMove, row, col)
	}

	that.cells[row][col] = player
	that.occupied++

	return nil
}

func (that *Board) IsEmpty(row, col int) bool {
	if !(Move{Row: row, Col: col}).inBounds() {
		return false
	}

	return that.cells[row][col] == Empty
}

// At returns the content of a square, Empty for coordinates outside the board.
func (that *Board) At(row, col int) Cell {
	if !(Move{Row: row, Col: col}).inBounds() {
		return Empty
	}

	return that.cells[row][col]
}

// EmptyCells lists the free squares in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, Cells-that.occupied)

	for row := range Size {
		for col := range Size {
			if that.cells[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Board) Occupied() int {
	return that.occupied
}

func (that *Board) IsFull() bool {
	return that.occupied == Cells
}

// ToMove returns the player whose turn it is, assuming alternating play that PlayerOne opened.
func (that *Board) ToMove() Cell {
	if that.occupied%2 == 0 {
		return PlayerOne
	}

	return PlayerTwo
}

// WinningLine returns the first line fully owned by one player.
func (that *Board) WinningLine() (Line, bool) {
	for _, line := range WinLines {
		a := that.cells[line[0].Row][line[0].Col]
		b := that.cells[line[1].Row][line[1].Col]
		c := that.cells[line[2].Row][line[2].Col]

		if a != Empty && a == b && b == c {
			return line, true
		}
	}

	return Line{}, false
}

// Winner returns the owner of the winning line, or Empty when there is none.
func (that *Board) Winner() Cell {
	line, ok := that.WinningLine()
	if !ok {
		return Empty
	}

	return that.cells[line[0].Row][line[0].Col]
}

func (that *Board) Outcome() Outcome {
	if winner := that.Winner(); winner != Empty {
		return Outcome{Status: Win, Winner: winner}
	}

	if that.IsFull() {
		return Outcome{Status: Draw}
	}

	return Outcome{Status: InProgress}
}

func (that *Board) String() string {
	var sb strings.Builder

	for row := range Size {
		if row > 0 {
			sb.WriteByte('\n')
		}

		for col := range Size {
			sb.WriteString(that.cells[row][col].String())
		}
	}

	return sb.String()
}
