package terminal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type gameController interface {
	MakeMove(row, col int) error
	BotTurn() bool
	PlayBotTurn() (entity.Move, error)
	ToggleMode() tictactoe.Mode
	SetDifficulty(difficulty service.Difficulty)
	Difficulty() service.Difficulty
	Reset()
	Board() entity.Board
	Outcome() entity.Outcome
	Turn() entity.Cell
	Mode() tictactoe.Mode
}

// Server draws the game on a terminal screen and turns mouse and key events into moves.
type Server struct {
	logger *slog.Logger
	screen tcell.Screen
	game   gameController

	handlers map[rune]func()

	cursor  entity.Move
	pressed bool
	message string
	quit    bool
}

// New expects an initialized screen. The caller owns it and calls Fini.
func New(logger *slog.Logger, screen tcell.Screen, game gameController) *Server {
	server := &Server{
		logger: logger.With("component", "terminal"),
		screen: screen,
		game:   game,
		cursor: entity.Move{Row: 1, Col: 1},
	}

	server.handlers = map[rune]func(){
		'g': server.handleToggleMode,
		'r': server.handleReset,
		'0': func() { server.handleDifficulty(service.Random) },
		'1': func() { server.handleDifficulty(service.Optimal) },
		'q': server.handleQuit,
		' ': server.handleCursorMove,
	}

	return server
}

// Run processes events until the player quits or ctx is canceled.
func (that *Server) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.screen.EnableMouse(tcell.MouseButtonEvents)

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			if err := that.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
				log.Error("failed to interrupt event loop", "error", err)
			}
		case <-stop:
		}
	}()

	that.playBot()
	that.draw()

	for {
		// nil means the screen was finalized
		event := that.screen.PollEvent()
		if event == nil {
			return nil
		}

		switch event := event.(type) {
		case *tcell.EventResize:
			that.screen.Sync()
		case *tcell.EventKey:
			that.handleKey(event)
		case *tcell.EventMouse:
			that.handleMouse(event)
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				log.Info("context canceled, leaving event loop")
				return nil
			}
		}

		if that.quit {
			log.Info("player quit")
			return nil
		}

		that.playBot()
		that.draw()
	}
}

// playBot lets the bot answer right after the human move is visible.
func (that *Server) playBot() {
	if !that.game.BotTurn() {
		return
	}

	that.draw()

	if _, err := that.game.PlayBotTurn(); err != nil {
		that.logger.Error("bot turn failed", "error", err)
		that.message = err.Error()
	}
}

func (that *Server) mark(move entity.Move) {
	log := that.logger.With("method", "mark")

	err := that.game.MakeMove(move.Row, move.Col)

	switch {
	case err == nil:
		that.message = ""
	case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrNotYourTurn):
		log.Debug("move rejected", "row", move.Row, "col", move.Col, "error", err)
		that.message = err.Error()
	default:
		log.Error("failed to make move", "error", err)
		that.message = err.Error()
	}
}
