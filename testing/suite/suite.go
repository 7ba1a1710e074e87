package suite

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/stretchr/testify/require"
)

const (
	maxWaitDuration = 30 * time.Second
	seed            = 42
)

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Rand   *rand.Rand
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rand:   rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

// Board plays moves alternately starting with PlayerOne and fails the test on an invalid move.
func (that *Suite) Board(moves ...entity.Move) entity.Board {
	that.Helper()

	board := entity.NewBoard()
	player := entity.PlayerOne

	for _, move := range moves {
		require.NoError(that, board.Mark(move.Row, move.Col, player), "move %v", move)
		player = player.Opponent()
	}

	return board
}
