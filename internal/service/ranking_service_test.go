package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/predictions-api/internal/domain/entity"
	apperrors "github.com/yourusername/predictions-api/internal/pkg/errors"
)

func TestBuildRanking_SortsByPointsDesc(t *testing.T) {
	members := []string{"u1", "u2", "u3"}
	preds := []entity.Prediction{
		{UserID: "u1", MatchID: "m1", WydadScore: 1, OpponentScore: 0}, // верный исход
		{UserID: "u2", MatchID: "m1", WydadScore: 2, OpponentScore: 0}, // точный счёт + исход
		{UserID: "u3", MatchID: "m1", WydadScore: 0, OpponentScore: 1}, // промах
	}
	results := map[string]entity.MatchResult{
		"m1": {MatchID: "m1", WydadScore: 2, OpponentScore: 0},
	}

	entries := BuildRanking(members, preds, results, entity.DefaultBreakdownScoring())

	require.Len(t, entries, 3)
	assert.Equal(t, "u2", entries[0].UserID)
	assert.Equal(t, 15, entries[0].Points)
	assert.Equal(t, "u1", entries[1].UserID)
	assert.Equal(t, 5, entries[1].Points)
	assert.Equal(t, "u3", entries[2].UserID)
	assert.Equal(t, 0, entries[2].Points)
	assert.Equal(t, 1, entries[2].Predictions)
}

func TestBuildRanking_TiesKeepMemberOrder(t *testing.T) {
	members := []string{"zeta", "alpha", "mid"}
	preds := []entity.Prediction{
		{UserID: "zeta", MatchID: "m1", WydadScore: 1, OpponentScore: 0},
		{UserID: "alpha", MatchID: "m1", WydadScore: 1, OpponentScore: 0},
		{UserID: "mid", MatchID: "m1", WydadScore: 3, OpponentScore: 0},
	}
	results := map[string]entity.MatchResult{
		"m1": {MatchID: "m1", WydadScore: 1, OpponentScore: 0},
	}

	entries := BuildRanking(members, preds, results, entity.DefaultBreakdownScoring())

	require.Len(t, entries, 3)
	// zeta и alpha набрали поровну: порядок входного списка сохраняется
	assert.Equal(t, "zeta", entries[0].UserID)
	assert.Equal(t, "alpha", entries[1].UserID)
	assert.Equal(t, "mid", entries[2].UserID)
}

func TestBuildRanking_IgnoresNonMembers(t *testing.T) {
	members := []string{"u1"}
	preds := []entity.Prediction{
		{UserID: "u1", MatchID: "m1", WydadScore: 1, OpponentScore: 0},
		{UserID: "outsider", MatchID: "m1", WydadScore: 1, OpponentScore: 0},
	}
	results := map[string]entity.MatchResult{
		"m1": {MatchID: "m1", WydadScore: 1, OpponentScore: 0},
	}

	entries := BuildRanking(members, preds, results, entity.DefaultBreakdownScoring())

	require.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].UserID)
}

func TestBuildRanking_MemberWithoutPredictions(t *testing.T) {
	entries := BuildRanking([]string{"u1"}, nil, nil, entity.DefaultBreakdownScoring())

	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Points)
	assert.Equal(t, 0, entries[0].Predictions)
}

func TestLeagueRanking_UsesLeagueScoring(t *testing.T) {
	leagueRepo := new(MockLeagueRepo)
	predictionRepo := new(MockPredictionRepo)
	resultRepo := new(MockResultRepo)
	svc := NewRankingService(leagueRepo, predictionRepo, resultRepo, nil)

	leagueRepo.On("GetByID", mock.Anything, "l1").Return(&entity.League{
		ID:      "l1",
		Members: []string{"u1"},
		Scoring: entity.ScoringConfig{ExactScore: 50, CorrectResult: 20},
	}, nil)
	predictionRepo.On("GetAll", mock.Anything).Return([]entity.Prediction{
		{UserID: "u1", MatchID: "m1", WydadScore: 1, OpponentScore: 0},
	}, nil)
	resultRepo.On("GetAll", mock.Anything).Return([]entity.MatchResult{
		{MatchID: "m1", WydadScore: 1, OpponentScore: 0},
	}, nil)

	entries, err := svc.LeagueRanking(context.Background(), "l1")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 70, entries[0].Points)
}

func TestLeagueRanking_NotFound(t *testing.T) {
	leagueRepo := new(MockLeagueRepo)
	svc := NewRankingService(leagueRepo, new(MockPredictionRepo), new(MockResultRepo), nil)

	leagueRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.LeagueRanking(context.Background(), "ghost")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestGlobalRanking_MembersFromPredictions(t *testing.T) {
	predictionRepo := new(MockPredictionRepo)
	resultRepo := new(MockResultRepo)
	svc := NewRankingService(new(MockLeagueRepo), predictionRepo, resultRepo, nil)

	predictionRepo.On("GetAll", mock.Anything).Return([]entity.Prediction{
		{UserID: "u1", MatchID: "m1", WydadScore: 1, OpponentScore: 0},
		{UserID: "u2", MatchID: "m1", WydadScore: 0, OpponentScore: 0},
		{UserID: "u1", MatchID: "m2", WydadScore: 2, OpponentScore: 1},
	}, nil)
	resultRepo.On("GetAll", mock.Anything).Return([]entity.MatchResult{
		{MatchID: "m1", WydadScore: 1, OpponentScore: 0},
	}, nil)

	entries, err := svc.GlobalRanking(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "u1", entries[0].UserID)
	assert.Equal(t, 2, entries[0].Predictions)
	assert.Equal(t, "u2", entries[1].UserID)
}

func TestGlobalRanking_UsesCache(t *testing.T) {
	cacheRepo := new(MockCacheRepo)
	svc := NewRankingService(new(MockLeagueRepo), new(MockPredictionRepo), new(MockResultRepo), cacheRepo)

	cacheRepo.On("GetJSON", globalRankingCacheKey, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(1).(*[]RankingEntry)
			*dest = []RankingEntry{{UserID: "cached", Points: 42}}
		}).
		Return(nil)

	entries, err := svc.GlobalRanking(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cached", entries[0].UserID)
}

func TestInvalidateAll_DropsGlobalAndLeagueKeys(t *testing.T) {
	leagueRepo := new(MockLeagueRepo)
	cacheRepo := new(MockCacheRepo)
	svc := NewRankingService(leagueRepo, new(MockPredictionRepo), new(MockResultRepo), cacheRepo)

	cacheRepo.On("Delete", globalRankingCacheKey).Return(nil)
	cacheRepo.On("Delete", leagueRankingCachePrefix+"l1").Return(nil)
	leagueRepo.On("GetAll", mock.Anything).Return([]entity.League{{ID: "l1"}}, nil)

	svc.InvalidateAll(context.Background())

	cacheRepo.AssertExpectations(t)
}
