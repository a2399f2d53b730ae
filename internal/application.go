package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/anonlabs/tictactoe-cli/internal/apperror"
	"github.com/anonlabs/tictactoe-cli/internal/config"
	"github.com/anonlabs/tictactoe-cli/internal/repository"
	"github.com/anonlabs/tictactoe-cli/internal/repository/storage"
	"github.com/anonlabs/tictactoe-cli/internal/service"
	"github.com/anonlabs/tictactoe-cli/internal/usecase"
	"github.com/anonlabs/tictactoe-cli/transport/terminal"
)

// RunApp - wires the configured storage backend into the repositories,
// services and terminal shell, then runs the shell until the player exits.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	scores, history, closeStorage, err := buildRepositories(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not set up storage: %w", err)
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	statsService := service.NewStatsService(scores, history)
	matchManager := usecase.NewMatchManager(logger, scores, history)
	shell := terminal.New(logger, matchManager, statsService)

	log.Info("starting tic-tac-toe", "storage", conf.Storage.Type)

	return shell.Run(ctx)
}

// buildRepositories - opens the backend named in the config and returns the
// score and history repositories on top of it, plus its close function.
func buildRepositories(ctx context.Context, conf *config.Config) (repository.ScoreRepository, repository.HistoryRepository, func() error, error) {
	switch conf.Storage.Type {
	case "sqlite":
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewScoreRepository(sqliteStorage.Connection),
			repository.NewHistoryRepository(sqliteStorage.Connection),
			sqliteStorage.Close, nil

	case "redis":
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Storage.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisScoreRepository(redisStorage.Connection),
			repository.NewRedisHistoryRepository(redisStorage.Connection),
			redisStorage.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStorageType, conf.Storage.Type)
	}
}
