package repository

import (
	"context"
	"maps"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memoryScore struct {
	mu     sync.Mutex
	scores map[string]*entity.Scoreboard
}

// NewMemoryScoreRepository - keeps scoreboards in process memory.
func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		scores: make(map[string]*entity.Scoreboard),
	}
}

func (that *memoryScore) RecordWin(_ context.Context, sessionID, playerName string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scoreboard(sessionID).Wins[playerName]++

	return nil
}

func (that *memoryScore) RecordTie(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scoreboard(sessionID).Ties++

	return nil
}

func (that *memoryScore) GetBySession(_ context.Context, sessionID string) (*entity.Scoreboard, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	scoreboard := entity.NewScoreboard()
	if existing, ok := that.scores[sessionID]; ok {
		maps.Copy(scoreboard.Wins, existing.Wins)
		scoreboard.Ties = existing.Ties
	}

	return scoreboard, nil
}

func (that *memoryScore) DeleteBySession(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.scores, sessionID)

	return nil
}

// scoreboard - callers hold mu.
func (that *memoryScore) scoreboard(sessionID string) *entity.Scoreboard {
	scoreboard, ok := that.scores[sessionID]
	if !ok {
		scoreboard = entity.NewScoreboard()
		that.scores[sessionID] = scoreboard
	}

	return scoreboard
}
