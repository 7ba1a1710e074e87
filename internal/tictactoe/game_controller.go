package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

type Mode string

const (
	ModeAI  Mode = "ai"
	ModePvP Mode = "pvp"
)

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(value); mode {
	case ModeAI, ModePvP:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: unknown game mode %q", apperror.ErrInvalidConfig, value)
	}
}

type bot interface {
	ChooseMove(board entity.Board) (entity.Move, error)
	Player() entity.Cell
	Difficulty() service.Difficulty
	SetDifficulty(difficulty service.Difficulty)
}

// GameController runs one game at a time: it applies moves, alternates turns and asks the bot when it is its turn.
type GameController struct {
	logger *slog.Logger
	bot    bot

	id      string
	board   entity.Board
	turn    entity.Cell
	mode    Mode
	running bool
}

func NewGameController(logger *slog.Logger, bot bot, mode Mode) *GameController {
	that := &GameController{
		logger: logger.With("component", "game_controller"),
		bot:    bot,
		mode:   mode,
	}

	that.Reset()

	return that
}

// Reset starts a new game. Mode and difficulty carry over.
func (that *GameController) Reset() {
	that.id = pkg.GenerateGameID()
	that.board = entity.NewBoard()
	that.turn = entity.PlayerOne
	that.running = true

	that.logger.Info("new game", "gameID", that.id, "mode", that.mode, "difficulty", that.bot.Difficulty().String())
}

// MakeMove marks the square for the player whose turn it is.
func (that *GameController) MakeMove(row, col int) error {
	if that.BotTurn() {
		return apperror.ErrNotYourTurn
	}

	return that.makeMove(row, col)
}

// BotTurn reports whether the bot is the one to move now.
func (that *GameController) BotTurn() bool {
	return that.mode == ModeAI && that.running && that.turn == that.bot.Player()
}

// PlayBotTurn lets the bot choose a square and applies it like a human move.
func (that *GameController) PlayBotTurn() (entity.Move, error) {
	if !that.running {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if !that.BotTurn() {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	move, err := that.bot.ChooseMove(that.board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to choose a move: %w", err)
	}

	if err = that.makeMove(move.Row, move.Col); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

func (that *GameController) makeMove(row, col int) error {
	log := that.logger.With("method", "makeMove", "gameID", that.id)

	if !that.running {
		return apperror.ErrGameFinished
	}

	if err := that.board.Mark(row, col, that.turn); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	log.Debug("square marked", "player", that.turn.String(), "row", row, "col", col)

	if outcome := that.board.Outcome(); outcome.IsTerminal() {
		that.running = false
		log.Info("game over", "status", outcome.Status.String(), "winner", outcome.Winner.String())

		return nil
	}

	that.turn = that.turn.Opponent()

	return nil
}

// ToggleMode switches between playing against the bot and two humans on one board.
func (that *GameController) ToggleMode() Mode {
	if that.mode == ModeAI {
		that.mode = ModePvP
	} else {
		that.mode = ModeAI
	}

	that.logger.Info("game mode changed", "gameID", that.id, "mode", that.mode)

	return that.mode
}

func (that *GameController) SetDifficulty(difficulty service.Difficulty) {
	that.bot.SetDifficulty(difficulty)

	that.logger.Info("difficulty changed", "gameID", that.id, "difficulty", difficulty.String())
}

func (that *GameController) Difficulty() service.Difficulty {
	return that.bot.Difficulty()
}

// Board returns a copy of the current board.
func (that *GameController) Board() entity.Board {
	return that.board
}

func (that *GameController) Outcome() entity.Outcome {
	return that.board.Outcome()
}

func (that *GameController) Turn() entity.Cell {
	return that.turn
}

func (that *GameController) Mode() Mode {
	return that.mode
}

func (that *GameController) Running() bool {
	return that.running
}

func (that *GameController) ID() string {
	return that.id
}
