package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/yourusername/predictions-api/internal/domain/entity"
)

// --- Моки репозиториев ---

type MockPredictionRepo struct {
	mock.Mock
}

func (m *MockPredictionRepo) GetByUserAndMatch(ctx context.Context, userID, matchID string) (*entity.Prediction, error) {
	args := m.Called(ctx, userID, matchID)
	if p, ok := args.Get(0).(*entity.Prediction); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionRepo) GetByMatch(ctx context.Context, matchID string) ([]entity.Prediction, error) {
	args := m.Called(ctx, matchID)
	if p, ok := args.Get(0).([]entity.Prediction); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionRepo) GetByUser(ctx context.Context, userID string) ([]entity.Prediction, error) {
	args := m.Called(ctx, userID)
	if p, ok := args.Get(0).([]entity.Prediction); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionRepo) GetAll(ctx context.Context) ([]entity.Prediction, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).([]entity.Prediction); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPredictionRepo) Upsert(ctx context.Context, prediction *entity.Prediction) (*entity.Prediction, error) {
	args := m.Called(ctx, prediction)
	if p, ok := args.Get(0).(*entity.Prediction); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	args := m.Called(ctx, id)
	if match, ok := args.Get(0).(*entity.Match); ok {
		return match, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMatchRepo) GetAll(ctx context.Context) ([]entity.Match, error) {
	args := m.Called(ctx)
	if matches, ok := args.Get(0).([]entity.Match); ok {
		return matches, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMatchRepo) Create(ctx context.Context, match *entity.Match) (*entity.Match, error) {
	args := m.Called(ctx, match)
	if created, ok := args.Get(0).(*entity.Match); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMatchRepo) SetStatus(ctx context.Context, id, status string) (*entity.Match, error) {
	args := m.Called(ctx, id, status)
	if match, ok := args.Get(0).(*entity.Match); ok {
		return match, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) GetByMatch(ctx context.Context, matchID string) (*entity.MatchResult, error) {
	args := m.Called(ctx, matchID)
	if r, ok := args.Get(0).(*entity.MatchResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockResultRepo) GetAll(ctx context.Context) ([]entity.MatchResult, error) {
	args := m.Called(ctx)
	if r, ok := args.Get(0).([]entity.MatchResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockResultRepo) Upsert(ctx context.Context, result *entity.MatchResult) (*entity.MatchResult, error) {
	args := m.Called(ctx, result)
	if r, ok := args.Get(0).(*entity.MatchResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockLeagueRepo struct {
	mock.Mock
}

func (m *MockLeagueRepo) GetByID(ctx context.Context, id string) (*entity.League, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*entity.League); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeagueRepo) GetAll(ctx context.Context) ([]entity.League, error) {
	args := m.Called(ctx)
	if l, ok := args.Get(0).([]entity.League); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeagueRepo) Create(ctx context.Context, league *entity.League) (*entity.League, error) {
	args := m.Called(ctx, league)
	if l, ok := args.Get(0).(*entity.League); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeagueRepo) SetMembers(ctx context.Context, id string, members []string) (*entity.League, error) {
	args := m.Called(ctx, id, members)
	if l, ok := args.Get(0).(*entity.League); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) GetByUser(ctx context.Context, userID string) (*entity.UserStats, error) {
	args := m.Called(ctx, userID)
	if s, ok := args.Get(0).(*entity.UserStats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStatsRepo) Upsert(ctx context.Context, stats *entity.UserStats) (*entity.UserStats, error) {
	args := m.Called(ctx, stats)
	if s, ok := args.Get(0).(*entity.UserStats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCacheRepo struct {
	mock.Mock
}

func (m *MockCacheRepo) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepo) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepo) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}
