package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/checkers/internal/checkers"
	"github.com/rocketscienceinc/checkers/internal/config"
	"github.com/rocketscienceinc/checkers/internal/transport/cli"
	"github.com/rocketscienceinc/checkers/internal/transport/redis"
	"github.com/rocketscienceinc/checkers/internal/usecase"
)

const humanPlayers = 2

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rules, err := checkers.RulesetByName(conf.Ruleset)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	game, err := checkers.NewGame(rules, humanPlayers)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	var match *usecase.Match
	if conf.Redis.Enabled() {
		publisher, err := redis.New(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Channel)
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}

		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error("could not close redis publisher", "error", err)
			}
		}()

		log.Info("publishing move events", "addr", conf.Redis.GetRedisAddr(), "channel", publisher.Channel())
		match, err = usecase.NewMatch(logger, game, publisher)
		if err != nil {
			return fmt.Errorf("could not start match: %w", err)
		}
	} else {
		match, err = usecase.NewMatch(logger, game, nil)
		if err != nil {
			return fmt.Errorf("could not start match: %w", err)
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     conf.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}
	defer rl.Close()

	// closing readline unblocks a pending Readline call
	go func() {
		<-ctx.Done()
		_ = rl.Close()
	}()

	log.Info("starting match", "game_id", match.ID(), "ruleset", rules.Name)

	handler := cli.New(logger, match, rl, rl.Stdout())
	if err = handler.Run(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("match closed", "game_id", match.ID())

	return nil
}
