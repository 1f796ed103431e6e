package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const closeTimeout = 5 * time.Second

var (
	ErrAddrNotFound             = errors.New("redis address string is empty")
	ErrUnknownScoreboardBackend = errors.New("unknown scoreboard backend")
)

// RunApp - runs a console session on stdin/stdout until the players quit or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	scoreRepo, closeStorage, err := newScoreRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	sessionID := uuid.NewString()
	gameManager := usecase.NewGameManager(logger, sessionID, engine.New(), scoreRepo)

	defer func() {
		closeCtx, cancelClose := context.WithTimeout(context.Background(), closeTimeout)
		defer cancelClose()

		if err := gameManager.Close(closeCtx); err != nil {
			log.Error("could not close session", "error", err)
		}
	}()

	log.Info("Starting console session", "session", sessionID, "scoreboard", conf.Scoreboard.Backend)

	// the console blocks on input, so it runs apart from the signal-driven context
	consoleErrCh := make(chan error, 1)
	go func() {
		consoleErrCh <- console.New(logger, gameManager, in, out, !conf.Console.NoColor).Run(ctx)
	}()

	select {
	case err = <-consoleErrCh:
		if err == nil || errors.Is(err, apperror.ErrInputClosed) || errors.Is(err, context.Canceled) {
			log.Info("Console session finished")
			return nil
		}
		return fmt.Errorf("console session error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newScoreRepository(ctx context.Context, conf *config.Config) (repository.ScoreRepository, func(), error) {
	switch conf.Scoreboard.Backend {
	case config.ScoreboardMemory:
		return repository.NewMemoryScoreRepository(), func() {}, nil
	case config.ScoreboardRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeStorage := func() {
			_ = redisStorage.Close()
		}

		return repository.NewScoreRepository(redisStorage.Connection, conf.Scoreboard.TTL), closeStorage, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownScoreboardBackend, conf.Scoreboard.Backend)
	}
}
