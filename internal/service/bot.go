package service

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Difficulty int

const (
	Random Difficulty = iota
	Optimal
)

const (
	scorePlayerOneWins = 1
	scorePlayerTwoWins = -1
	scoreDraw          = 0
)

func (that Difficulty) String() string {
	switch that {
	case Random:
		return "random"
	case Optimal:
		return "optimal"
	default:
		return "unknown"
	}
}

// ParseDifficulty accepts the level numbers used by the key bindings ("0", "1") and the names.
func ParseDifficulty(value string) (Difficulty, error) {
	switch value {
	case "0", "random":
		return Random, nil
	case "1", "optimal":
		return Optimal, nil
	default:
		return 0, fmt.Errorf("%w: unknown difficulty %q", apperror.ErrInvalidConfig, value)
	}
}

// Bot picks moves for one player. It keeps no state between calls.
type Bot struct {
	logger     *slog.Logger
	rnd        *rand.Rand
	difficulty Difficulty
	player     entity.Cell
}

func NewBot(logger *slog.Logger, difficulty Difficulty, player entity.Cell, rnd *rand.Rand) *Bot {
	return &Bot{
		logger:     logger.With("component", "bot"),
		rnd:        rnd,
		difficulty: difficulty,
		player:     player,
	}
}

func (that *Bot) Difficulty() Difficulty {
	return that.difficulty
}

func (that *Bot) SetDifficulty(difficulty Difficulty) {
	that.difficulty = difficulty
}

func (that *Bot) Player() entity.Cell {
	return that.player
}

// ChooseMove returns the square the bot wants to mark on board.
func (that *Bot) ChooseMove(board entity.Board) (entity.Move, error) {
	log := that.logger.With("method", "ChooseMove", "difficulty", that.difficulty.String())

	if err := that.checkBoard(&board); err != nil {
		return entity.Move{}, err
	}

	if that.difficulty == Random {
		move := that.randomMove(&board)
		log.Debug("bot has chosen a square", "row", move.Row, "col", move.Col, "eval", "random")

		return move, nil
	}

	score, move := minimax(board, board.ToMove() == entity.PlayerOne)
	log.Debug("bot has chosen a square", "row", move.Row, "col", move.Col, "eval", strconv.Itoa(score))

	return move, nil
}

// Evaluate runs the full search regardless of difficulty and returns the score together with the move.
func (that *Bot) Evaluate(board entity.Board) (int, entity.Move, error) {
	if err := that.checkBoard(&board); err != nil {
		return 0, entity.Move{}, err
	}

	score, move := minimax(board, board.ToMove() == entity.PlayerOne)

	return score, move, nil
}

func (that *Bot) checkBoard(board *entity.Board) error {
	if outcome := board.Outcome(); outcome.IsTerminal() {
		return fmt.Errorf("%w: board is a %s", apperror.ErrSearchOnTerminalBoard, outcome.Status)
	}

	if board.ToMove() != that.player {
		return fmt.Errorf("%w: bot plays %s, %s is to move", apperror.ErrNotYourTurn, that.player, board.ToMove())
	}

	return nil
}

func (that *Bot) randomMove(board *entity.Board) entity.Move {
	availableCells := board.EmptyCells()

	return availableCells[that.rnd.Intn(len(availableCells))]
}

// minimax scores board from PlayerOne's point of view. Maximizing layers place PlayerOne,
// minimizing layers place PlayerTwo. Only a strictly better score replaces the best move,
// so among equal moves the first in row-major order wins.
func minimax(board entity.Board, maximizing bool) (int, entity.Move) {
	switch outcome := board.Outcome(); {
	case outcome.Status == entity.Win && outcome.Winner == entity.PlayerOne:
		return scorePlayerOneWins, entity.Move{}
	case outcome.Status == entity.Win:
		return scorePlayerTwoWins, entity.Move{}
	case outcome.Status == entity.Draw:
		return scoreDraw, entity.Move{}
	}

	player, bestScore := entity.PlayerTwo, scorePlayerOneWins+1
	if maximizing {
		player, bestScore = entity.PlayerOne, scorePlayerTwoWins-1
	}

	var bestMove entity.Move

	for _, move := range board.EmptyCells() {
		next := board
		// the square comes from EmptyCells, so Mark cannot fail
		_ = next.Mark(move.Row, move.Col, player)

		score, _ := minimax(next, !maximizing)

		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			bestMove = move
		}
	}

	return bestScore, bestMove
}
