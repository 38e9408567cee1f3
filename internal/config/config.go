package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/goserg/matchsim/internal/domain"
)

const (
	DefaultServerPath = "configs/server.toml"
	DefaultBotPath    = "configs/bot.toml"
)

type TgBot struct {
	TelegramApiToken string `toml:"telegram_apitoken" env:"TELEGRAM_APITOKEN"`
	Debug            bool   `toml:"debug"`
}

type Simulation struct {
	BestOf         int   `toml:"best_of" env:"MATCHSIM_BEST_OF"`
	MaxSimulations int   `toml:"max_simulations" env:"MATCHSIM_MAX_SIMULATIONS"`
	HistorySize    int   `toml:"history_size"`
	Seed           int64 `toml:"seed" env:"MATCHSIM_SEED"`
}

type Server struct {
	Host         string     `toml:"host" env:"MATCHSIM_HOST"`
	Port         int        `toml:"port" env:"MATCHSIM_PORT"`
	TgBotEnabled bool       `toml:"tg_bot_enabled" env:"MATCHSIM_TG_BOT_ENABLED"`
	Debug        bool       `toml:"debug_mode" env:"MATCHSIM_DEBUG"`
	Simulation   Simulation `toml:"simulation"`
}

type Config struct {
	TgBot  TgBot
	Server Server
}

func defaults() Config {
	return Config{
		Server: Server{
			Host: "0.0.0.0",
			Port: 3000,
			Simulation: Simulation{
				BestOf:         domain.DefaultBestOf,
				MaxSimulations: 1_000_000,
				HistorySize:    50,
			},
		},
	}
}

// New reads the server config and, when the bot is enabled, the bot config.
// Environment variables override file values.
func New(serverPath string, botPath string) (Config, error) {
	cfg := defaults()
	_, err := toml.DecodeFile(serverPath, &cfg.Server)
	if err != nil {
		return Config{}, fmt.Errorf("server config %s: %w", serverPath, err)
	}
	if err := env.Parse(&cfg.Server); err != nil {
		return Config{}, fmt.Errorf("server env: %w", err)
	}

	if cfg.Server.TgBotEnabled {
		_, err = toml.DecodeFile(botPath, &cfg.TgBot)
		if err != nil {
			return Config{}, fmt.Errorf("bot config %s: %w", botPath, err)
		}
	}
	if err := env.Parse(&cfg.TgBot); err != nil {
		return Config{}, fmt.Errorf("bot env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := domain.ValidateBestOf(c.Server.Simulation.BestOf); err != nil {
		return fmt.Errorf("simulation.best_of: %w", err)
	}
	if c.Server.Simulation.MaxSimulations <= 0 {
		return fmt.Errorf("simulation.max_simulations must be positive, got %d", c.Server.Simulation.MaxSimulations)
	}
	if c.Server.TgBotEnabled && c.TgBot.TelegramApiToken == "" {
		return errors.New("telegram bot enabled without a token")
	}
	return nil
}
