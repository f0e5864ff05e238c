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

func TestCreateLeague_DefaultScoring(t *testing.T) {
	leagueRepo := new(MockLeagueRepo)
	svc := NewLeagueService(leagueRepo)

	var created *entity.League
	leagueRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.League")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.League)
		}).
		Return(&entity.League{ID: "l1", Name: "Amis du Wydad"}, nil)

	_, err := svc.CreateLeague(context.Background(), "Amis du Wydad", "u1", nil)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, []string{"u1"}, created.Members, "создатель — первый участник")
	assert.Equal(t, entity.DefaultLeagueScoring(), created.Scoring)
}

func TestCreateLeague_CustomScoring(t *testing.T) {
	leagueRepo := new(MockLeagueRepo)
	svc := NewLeagueService(leagueRepo)

	custom := entity.ScoringConfig{ExactScore: 42, CorrectResult: 7}
	var created *entity.League
	leagueRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.League")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.League)
		}).
		Return(&entity.League{ID: "l1"}, nil)

	_, err := svc.CreateLeague(context.Background(), "Custom", "u1", &custom)

	require.NoError(t, err)
	assert.Equal(t, custom, created.Scoring)
}

func TestCreateLeague_EmptyName(t *testing.T) {
	svc := NewLeagueService(new(MockLeagueRepo))

	_, err := svc.CreateLeague(context.Background(), "", "u1", nil)

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestJoinLeague_Success(t *testing.T) {
	leagueRepo := new(MockLeagueRepo)
	svc := NewLeagueService(leagueRepo)

	leagueRepo.On("GetByID", mock.Anything, "l1").Return(&entity.League{
		ID:      "l1",
		Members: []string{"u1"},
	}, nil)
	leagueRepo.On("SetMembers", mock.Anything, "l1", []string{"u1", "u2"}).
		Return(&entity.League{ID: "l1", Members: []string{"u1", "u2"}}, nil)

	league, err := svc.JoinLeague(context.Background(), "l1", "u2")

	require.NoError(t, err)
	assert.True(t, league.HasMember("u2"))
	leagueRepo.AssertExpectations(t)
}

func TestJoinLeague_AlreadyMember(t *testing.T) {
	leagueRepo := new(MockLeagueRepo)
	svc := NewLeagueService(leagueRepo)

	leagueRepo.On("GetByID", mock.Anything, "l1").Return(&entity.League{
		ID:      "l1",
		Members: []string{"u1"},
	}, nil)

	_, err := svc.JoinLeague(context.Background(), "l1", "u1")

	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestJoinLeague_NotFound(t *testing.T) {
	leagueRepo := new(MockLeagueRepo)
	svc := NewLeagueService(leagueRepo)

	leagueRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.JoinLeague(context.Background(), "ghost", "u1")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
