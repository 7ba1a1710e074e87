package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	originX    = 2
	originY    = 1
	cellWidth  = 7
	cellHeight = 3

	boardWidth  = entity.Size*cellWidth + entity.Size - 1
	boardHeight = entity.Size*cellHeight + entity.Size - 1

	statusY = originY + boardHeight + 1
	helpY   = statusY + 1
	errorY  = helpY + 1

	helpText = "click/enter: mark  arrows: move  g: mode  r: reset  0: random AI  1: optimal AI  q: quit"
)

var (
	styleLine   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCross  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleCircle = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleWin    = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack).Bold(true)
	styleCursor = tcell.StyleDefault.Reverse(true)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// cellOrigin returns the top-left screen position of a square.
func cellOrigin(move entity.Move) (int, int) {
	return originX + move.Col*(cellWidth+1), originY + move.Row*(cellHeight+1)
}

// cellAt maps a screen position to a square. Grid lines and the outside of the board map to nothing.
func cellAt(x, y int) (entity.Move, bool) {
	dx, dy := x-originX, y-originY
	if dx < 0 || dy < 0 {
		return entity.Move{}, false
	}

	if dx%(cellWidth+1) == cellWidth || dy%(cellHeight+1) == cellHeight {
		return entity.Move{}, false
	}

	move := entity.Move{Row: dy / (cellHeight + 1), Col: dx / (cellWidth + 1)}
	if move.Row >= entity.Size || move.Col >= entity.Size {
		return entity.Move{}, false
	}

	return move, true
}

func (that *Server) draw() {
	that.screen.Clear()

	board := that.game.Board()

	winning := make(map[entity.Move]bool, entity.Size)
	if line, ok := board.WinningLine(); ok {
		for _, move := range line {
			winning[move] = true
		}
	}

	that.drawGrid()

	for row := range entity.Size {
		for col := range entity.Size {
			move := entity.Move{Row: row, Col: col}
			that.drawCell(move, board.At(row, col), winning[move])
		}
	}

	drawText(that.screen, originX, statusY, tcell.StyleDefault, that.status())
	drawText(that.screen, originX, helpY, styleLine, helpText)

	if that.message != "" {
		drawText(that.screen, originX, errorY, styleError, that.message)
	}

	that.screen.Show()
}

func (that *Server) drawGrid() {
	for i := 1; i < entity.Size; i++ {
		lineX := originX + i*(cellWidth+1) - 1
		lineY := originY + i*(cellHeight+1) - 1

		for y := originY; y < originY+boardHeight; y++ {
			that.screen.SetContent(lineX, y, tcell.RuneVLine, nil, styleLine)
		}

		for x := originX; x < originX+boardWidth; x++ {
			r := tcell.RuneHLine
			if (x-originX)%(cellWidth+1) == cellWidth {
				r = tcell.RunePlus
			}

			that.screen.SetContent(x, lineY, r, nil, styleLine)
		}
	}
}

func (that *Server) drawCell(move entity.Move, cell entity.Cell, winning bool) {
	x, y := cellOrigin(move)

	background := tcell.StyleDefault
	switch {
	case winning:
		background = styleWin
	case move == that.cursor:
		background = styleCursor
	}

	for dy := range cellHeight {
		for dx := range cellWidth {
			that.screen.SetContent(x+dx, y+dy, ' ', nil, background)
		}
	}

	style := background
	if !winning {
		switch cell {
		case entity.PlayerOne:
			style = styleCross
		case entity.PlayerTwo:
			style = styleCircle
		}

		if move == that.cursor {
			style = style.Reverse(true)
		}
	}

	if cell != entity.Empty {
		that.screen.SetContent(x+cellWidth/2, y+cellHeight/2, []rune(cell.String())[0], nil, style)
	}
}

func (that *Server) status() string {
	header := fmt.Sprintf("mode: %s  AI: %s", that.game.Mode(), that.game.Difficulty())

	switch outcome := that.game.Outcome(); outcome.Status {
	case entity.Win:
		return fmt.Sprintf("%s  |  %s wins, press r to restart", header, outcome.Winner)
	case entity.Draw:
		return header + "  |  draw, press r to restart"
	default:
		return fmt.Sprintf("%s  |  %s to move", header, that.game.Turn())
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
