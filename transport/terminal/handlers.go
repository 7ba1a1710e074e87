package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

func (that *Server) handleKey(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		that.handleQuit()
	case tcell.KeyUp:
		that.moveCursor(-1, 0)
	case tcell.KeyDown:
		that.moveCursor(1, 0)
	case tcell.KeyLeft:
		that.moveCursor(0, -1)
	case tcell.KeyRight:
		that.moveCursor(0, 1)
	case tcell.KeyEnter:
		that.handleCursorMove()
	case tcell.KeyRune:
		if handler, ok := that.handlers[event.Rune()]; ok {
			handler()
		}
	}
}

// handleMouse marks the clicked square on the press of the left button only.
func (that *Server) handleMouse(event *tcell.EventMouse) {
	pressed := event.Buttons()&tcell.Button1 != 0
	defer func() { that.pressed = pressed }()

	if !pressed || that.pressed {
		return
	}

	move, ok := cellAt(event.Position())
	if !ok {
		return
	}

	that.cursor = move
	that.mark(move)
}

func (that *Server) handleCursorMove() {
	that.mark(that.cursor)
}

func (that *Server) moveCursor(rows, cols int) {
	that.cursor.Row = (that.cursor.Row + rows + entity.Size) % entity.Size
	that.cursor.Col = (that.cursor.Col + cols + entity.Size) % entity.Size
}

func (that *Server) handleToggleMode() {
	that.game.ToggleMode()
	that.message = ""
}

func (that *Server) handleReset() {
	that.game.Reset()
	that.message = ""
}

func (that *Server) handleDifficulty(difficulty service.Difficulty) {
	that.game.SetDifficulty(difficulty)
}

func (that *Server) handleQuit() {
	that.quit = true
}
