package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	for value, expected := range map[string]Difficulty{"0": Random, "random": Random, "1": Optimal, "optimal": Optimal} {
		difficulty, err := ParseDifficulty(value)

		require.NoError(t, err)
		assert.Equal(t, expected, difficulty)
	}

	_, err := ParseDifficulty("2")
	require.ErrorIs(t, err, apperror.ErrInvalidConfig)
}

func TestBot_ChooseMove_Errors(t *testing.T) {
	t.Run("Returns ErrSearchOnTerminalBoard on a won board", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBot(st.Logger, Optimal, entity.PlayerTwo, st.Rand)

		// Given: PlayerOne already owns the top row
		board := st.Board(
			entity.Move{Row: 0, Col: 0}, entity.Move{Row: 1, Col: 0},
			entity.Move{Row: 0, Col: 1}, entity.Move{Row: 1, Col: 1},
			entity.Move{Row: 0, Col: 2},
		)

		// When: the bot is asked for a move
		_, err := bot.ChooseMove(board)

		// Then: the search is refused
		require.ErrorIs(t, err, apperror.ErrSearchOnTerminalBoard)
	})

	t.Run("Returns ErrSearchOnTerminalBoard on a full board", func(t *testing.T) {
		_, st := suite.New(t)

		board := st.Board(
			entity.Move{Row: 0, Col: 0}, entity.Move{Row: 0, Col: 1}, entity.Move{Row: 0, Col: 2},
			entity.Move{Row: 1, Col: 1}, entity.Move{Row: 1, Col: 0}, entity.Move{Row: 1, Col: 2},
			entity.Move{Row: 2, Col: 1}, entity.Move{Row: 2, Col: 0}, entity.Move{Row: 2, Col: 2},
		)

		for _, difficulty := range []Difficulty{Random, Optimal} {
			bot := NewBot(st.Logger, difficulty, entity.PlayerTwo, st.Rand)

			_, err := bot.ChooseMove(board)

			require.ErrorIs(t, err, apperror.ErrSearchOnTerminalBoard)
		}
	})

	t.Run("Returns ErrNotYourTurn when the other player is to move", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBot(st.Logger, Optimal, entity.PlayerTwo, st.Rand)

		// Given: an empty board, PlayerOne to move
		board := entity.NewBoard()

		// When: the PlayerTwo bot is asked for a move
		_, err := bot.ChooseMove(board)

		// Then: it refuses
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})
}

func TestBot_ChooseMove_Random(t *testing.T) {
	t.Run("Picks every empty square with equal odds", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBot(st.Logger, Random, entity.PlayerTwo, st.Rand)

		// Given: a board with three squares taken
		board := st.Board(entity.Move{Row: 1, Col: 1}, entity.Move{Row: 0, Col: 0}, entity.Move{Row: 2, Col: 2})
		free := board.EmptyCells()

		// When: the bot picks many times
		const rounds = 1400
		counts := make(map[entity.Move]int)

		for range rounds {
			move, err := bot.ChooseMove(board)
			require.NoError(t, err)
			require.True(t, board.IsEmpty(move.Row, move.Col))

			counts[move]++
		}

		// Then: each empty square is chosen about equally often
		require.Len(t, counts, len(free))

		for _, move := range free {
			assert.InDelta(t, rounds/len(free), counts[move], 60, "move %v", move)
		}

		// And: the caller's board is untouched
		assert.Equal(t, 3, board.Occupied())
	})
}

func TestBot_ChooseMove_Optimal(t *testing.T) {
	t.Run("Takes an immediate win as PlayerTwo", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBot(st.Logger, Optimal, entity.PlayerTwo, st.Rand)

		// Given:
		// - X -
		// X O -
		// - X O
		board := st.Board(
			entity.Move{Row: 0, Col: 1}, entity.Move{Row: 1, Col: 1},
			entity.Move{Row: 1, Col: 0}, entity.Move{Row: 2, Col: 2},
			entity.Move{Row: 2, Col: 1},
		)

		// When: the bot chooses
		move, err := bot.ChooseMove(board)

		// Then: it completes the diagonal
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("Takes an immediate win as PlayerOne", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBot(st.Logger, Optimal, entity.PlayerOne, st.Rand)

		// Given:
		// X O -
		// X O -
		// - - -
		board := st.Board(
			entity.Move{Row: 0, Col: 0}, entity.Move{Row: 1, Col: 1},
			entity.Move{Row: 1, Col: 0}, entity.Move{Row: 0, Col: 1},
		)

		// When: the bot chooses
		move, err := bot.ChooseMove(board)

		// Then: it completes the first column instead of leaving the win to PlayerTwo
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 0}, move)
	})

	t.Run("Blocks an immediate loss as PlayerTwo", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBot(st.Logger, Optimal, entity.PlayerTwo, st.Rand)

		// Given:
		// - - -
		// - O -
		// - X X
		board := st.Board(
			entity.Move{Row: 2, Col: 2}, entity.Move{Row: 1, Col: 1},
			entity.Move{Row: 2, Col: 1},
		)

		// When: the bot chooses
		move, err := bot.ChooseMove(board)

		// Then: it blocks the bottom row
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 0}, move)
	})

	t.Run("Blocks an immediate loss as PlayerOne", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBot(st.Logger, Optimal, entity.PlayerOne, st.Rand)

		// Given:
		// X O -
		// - O -
		// - - X
		board := st.Board(
			entity.Move{Row: 0, Col: 0}, entity.Move{Row: 1, Col: 1},
			entity.Move{Row: 2, Col: 2}, entity.Move{Row: 0, Col: 1},
		)

		// When: the bot chooses
		move, err := bot.ChooseMove(board)

		// Then: it blocks the middle column
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 1}, move)
	})

	t.Run("Breaks ties on the first square in row-major order", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBot(st.Logger, Optimal, entity.PlayerOne, st.Rand)

		// Given: an empty board where every opening leads to a draw
		board := entity.NewBoard()

		// When: the bot chooses twice
		first, err := bot.ChooseMove(board)
		require.NoError(t, err)

		second, err := bot.ChooseMove(board)
		require.NoError(t, err)

		// Then: both runs pick the top-left corner
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, first)
		assert.Equal(t, first, second)
	})

	t.Run("Does not change the caller's board", func(t *testing.T) {
		_, st := suite.New(t)
		bot := NewBot(st.Logger, Optimal, entity.PlayerTwo, st.Rand)

		board := st.Board(entity.Move{Row: 1, Col: 1})
		before := board

		_, err := bot.ChooseMove(board)
		require.NoError(t, err)

		assert.Equal(t, before, board)
	})
}

func TestBot_Evaluate(t *testing.T) {
	_, st := suite.New(t)
	bot := NewBot(st.Logger, Random, entity.PlayerTwo, st.Rand)

	t.Run("Opening position is a draw", func(t *testing.T) {
		score, move, err := NewBot(st.Logger, Random, entity.PlayerOne, st.Rand).Evaluate(entity.NewBoard())

		require.NoError(t, err)
		assert.Equal(t, scoreDraw, score)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})

	t.Run("Winning position scores for PlayerTwo", func(t *testing.T) {
		board := st.Board(
			entity.Move{Row: 0, Col: 1}, entity.Move{Row: 1, Col: 1},
			entity.Move{Row: 1, Col: 0}, entity.Move{Row: 2, Col: 2},
			entity.Move{Row: 2, Col: 1},
		)

		score, move, err := bot.Evaluate(board)

		require.NoError(t, err)
		assert.Equal(t, scorePlayerTwoWins, score)
		assert.Equal(t, entity.Move{Row: 0, Col: 0}, move)
	})
}

func TestBot_NeverLoses(t *testing.T) {
	t.Run("Optimal against optimal is a draw", func(t *testing.T) {
		_, st := suite.New(t)
		bots := map[entity.Cell]*Bot{
			entity.PlayerOne: NewBot(st.Logger, Optimal, entity.PlayerOne, st.Rand),
			entity.PlayerTwo: NewBot(st.Logger, Optimal, entity.PlayerTwo, st.Rand),
		}

		board := entity.NewBoard()

		for !board.Outcome().IsTerminal() {
			player := board.ToMove()

			move, err := bots[player].ChooseMove(board)
			require.NoError(t, err)
			require.NoError(t, board.Mark(move.Row, move.Col, player))
		}

		assert.Equal(t, entity.Outcome{Status: entity.Draw}, board.Outcome())
	})

	t.Run("Optimal PlayerTwo never loses against random play", func(t *testing.T) {
		_, st := suite.New(t)
		random := NewBot(st.Logger, Random, entity.PlayerOne, st.Rand)
		optimal := NewBot(st.Logger, Optimal, entity.PlayerTwo, st.Rand)

		for game := range 25 {
			board := entity.NewBoard()

			for !board.Outcome().IsTerminal() {
				bot := random
				if board.ToMove() == entity.PlayerTwo {
					bot = optimal
				}

				move, err := bot.ChooseMove(board)
				require.NoError(t, err)
				require.NoError(t, board.Mark(move.Row, move.Col, bot.Player()))
			}

			assert.NotEqual(t, entity.PlayerOne, board.Winner(), "game %d:\n%s", game, board.String())
		}
	})
}
