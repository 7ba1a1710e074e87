package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Game     Game   `yaml:"game"`
	AI       AI     `yaml:"ai"`
}

type Game struct {
	Mode string `yaml:"mode" env:"GAME_MODE" env-default:"ai"`
}

type AI struct {
	// Difficulty is "random" (or "0") or "optimal" (or "1").
	Difficulty string `yaml:"difficulty" env:"AI_DIFFICULTY" env-default:"optimal"`
	Player     int    `yaml:"player" env:"AI_PLAYER" env-default:"2"`
	// Seed for the random bot, 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"AI_SEED"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info":
	default:
		return fmt.Errorf("%w: log-level %q", apperror.ErrInvalidConfig, that.LogLevel)
	}

	if _, err := tictactoe.ParseMode(that.Game.Mode); err != nil {
		return err
	}

	if _, err := service.ParseDifficulty(that.AI.Difficulty); err != nil {
		return err
	}

	if that.AI.Player != 1 && that.AI.Player != 2 {
		return fmt.Errorf("%w: ai.player %d", apperror.ErrInvalidConfig, that.AI.Player)
	}

	return nil
}
