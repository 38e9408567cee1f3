package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/goserg/matchsim/internal/cache/mem"
	"github.com/goserg/matchsim/internal/config"
	"github.com/goserg/matchsim/internal/logger"
	"github.com/goserg/matchsim/internal/service"
	"github.com/goserg/matchsim/internal/tgbot"
	"github.com/goserg/matchsim/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfigPath, botConfigPath string
	flag.StringVar(&serverConfigPath, "server-config", config.DefaultServerPath, "path to server config")
	flag.StringVar(&botConfigPath, "bot-config", config.DefaultBotPath, "path to bot config")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	simulationService := service.New(
		cfg.Server.Simulation,
		mem.New(cfg.Server.Simulation.HistorySize),
		log,
	)

	if cfg.Server.TgBotEnabled {
		bot, err := tgbot.New(simulationService, cfg.TgBot, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	server, err := web.New(simulationService, cfg.Server, log)
	if err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		log.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()
	return server.Serve()
}
