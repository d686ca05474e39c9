// Command lifecounter runs a table session on the terminal, reading one
// command per line from stdin.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"lifecounter/internal/app"
	"lifecounter/internal/config"
	"lifecounter/internal/domain"
	"lifecounter/internal/ports/console"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.LoadDotEnv(); err != nil {
		logger.WithError(err).Fatal("Failed to load .env")
	}
	env, err := config.LoadEnv()
	if err != nil {
		logger.WithError(err).Fatal("Invalid environment")
	}
	if level, err := logrus.ParseLevel(env.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithField("level", env.LogLevel).Warn("Unknown log level, using info")
	}

	if err := config.LoadTableConfig(env.ConfigPath); err != nil {
		logger.WithError(err).Warn("Could not load table config, using defaults")
	}
	tableCfg := config.GetTableConfig()

	playerCount := tableCfg.GetPlayerCount()
	if env.PlayerCount != 0 {
		playerCount = env.PlayerCount
	}
	startingLife := tableCfg.GetStartingLife()
	if env.StartingLife != "" {
		startingLife, _ = domain.ParseStartingLife(env.StartingLife)
	}

	svc, err := app.NewService(playerCount, startingLife)
	if err != nil {
		logger.WithError(err).Fatal("Invalid table configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := console.NewRunner(svc, console.NewTextViewPort(os.Stdout), os.Stdout, logger, tableCfg.FormatStartingLife)
	logger.WithFields(logrus.Fields{
		"table_id":      svc.ID(),
		"player_count":  playerCount,
		"starting_life": startingLife,
	}).Info("Table ready")

	if err := runner.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logger.WithError(err).Fatal("Console session failed")
	}
}
