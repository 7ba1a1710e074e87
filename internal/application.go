package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameController, err := NewGameController(logger, conf)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not init screen: %w", err)
	}
	defer screen.Fini()

	log.Info("Starting terminal game", "mode", gameController.Mode(), "difficulty", gameController.Difficulty().String())

	if err = terminal.New(logger, screen, gameController).Run(ctx); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	log.Info("Game closed, shutting down")

	return nil
}

// NewGameController builds the bot and the controller from the config.
func NewGameController(logger *slog.Logger, conf *config.Config) (*tictactoe.GameController, error) {
	mode, err := tictactoe.ParseMode(conf.Game.Mode)
	if err != nil {
		return nil, fmt.Errorf("could not parse game mode: %w", err)
	}

	difficulty, err := service.ParseDifficulty(conf.AI.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("could not parse difficulty: %w", err)
	}

	seed := conf.AI.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	player := entity.PlayerTwo
	if conf.AI.Player == 1 {
		player = entity.PlayerOne
	}

	bot := service.NewBot(logger, difficulty, player, rand.New(rand.NewSource(seed))) //nolint: gosec // it's ok

	return tictactoe.NewGameController(logger, bot, mode), nil
}
