package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	scoreKeyPrefix = "scoreboard:"
	winFieldPrefix = "win:"
	tiesField      = "ties"
)

type ScoreRepository interface {
	RecordWin(ctx context.Context, sessionID, playerName string) error
	RecordTie(ctx context.Context, sessionID string) error
	GetBySession(ctx context.Context, sessionID string) (*entity.Scoreboard, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type dbScore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreRepository - stores each session's scoreboard in a Redis hash that expires after ttl.
func NewScoreRepository(client *redis.Client, ttl time.Duration) ScoreRepository {
	return &dbScore{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbScore) RecordWin(ctx context.Context, sessionID, playerName string) error {
	if err := that.increment(ctx, sessionID, winFieldPrefix+playerName); err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}

	return nil
}

func (that *dbScore) RecordTie(ctx context.Context, sessionID string) error {
	if err := that.increment(ctx, sessionID, tiesField); err != nil {
		return fmt.Errorf("failed to record tie: %w", err)
	}

	return nil
}

func (that *dbScore) increment(ctx context.Context, sessionID, field string) error {
	scoreKey := scoreKeyPrefix + sessionID

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, scoreKey, field, 1)
		if that.ttl > 0 {
			pipe.Expire(ctx, scoreKey, that.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", field, err)
	}

	return nil
}

// GetBySession - an unknown session has an empty scoreboard.
func (that *dbScore) GetBySession(ctx context.Context, sessionID string) (*entity.Scoreboard, error) {
	scoreKey := scoreKeyPrefix + sessionID

	fields, err := that.client.HGetAll(ctx, scoreKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	scoreboard := entity.NewScoreboard()
	for field, value := range fields {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", field, err)
		}

		switch {
		case field == tiesField:
			scoreboard.Ties = count
		case strings.HasPrefix(field, winFieldPrefix):
			scoreboard.Wins[strings.TrimPrefix(field, winFieldPrefix)] = count
		}
	}

	return scoreboard, nil
}

func (that *dbScore) DeleteBySession(ctx context.Context, sessionID string) error {
	scoreKey := scoreKeyPrefix + sessionID

	if err := that.client.Del(ctx, scoreKey).Err(); err != nil {
		return fmt.Errorf("failed to delete scoreboard: %w", err)
	}

	return nil
}
