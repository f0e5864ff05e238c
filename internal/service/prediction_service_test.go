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

func TestSubmitPrediction_Success(t *testing.T) {
	predictionRepo := new(MockPredictionRepo)
	matchRepo := new(MockMatchRepo)
	svc := NewPredictionService(predictionRepo, matchRepo)

	matchRepo.On("GetByID", mock.Anything, "m1").
		Return(&entity.Match{ID: "m1", Status: entity.MatchStatusScheduled}, nil)
	predictionRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*entity.Prediction")).
		Return(&entity.Prediction{ID: "p1", UserID: "u1", MatchID: "m1"}, nil)

	p := &entity.Prediction{
		UserID:        "u1",
		MatchID:       "m1",
		WydadScore:    2,
		OpponentScore: 1,
		Result:        entity.ResultLose, // заявленный исход противоречит счёту
		Scorers:       []string{"Rahimi", "Jabrane"},
	}
	stored, err := svc.SubmitPrediction(context.Background(), p)

	require.NoError(t, err)
	require.NotNil(t, stored)
	// Исход пересчитан из счёта, заявленное значение отброшено
	assert.Equal(t, entity.ResultWin, p.Result)
	predictionRepo.AssertExpectations(t)
	matchRepo.AssertExpectations(t)
}

func TestSubmitPrediction_TooManyScorers(t *testing.T) {
	svc := NewPredictionService(new(MockPredictionRepo), new(MockMatchRepo))

	_, err := svc.SubmitPrediction(context.Background(), &entity.Prediction{
		UserID:     "u1",
		MatchID:    "m1",
		WydadScore: 1,
		Scorers:    []string{"Rahimi", "Jabrane"},
	})

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestSubmitPrediction_NegativeScore(t *testing.T) {
	svc := NewPredictionService(new(MockPredictionRepo), new(MockMatchRepo))

	_, err := svc.SubmitPrediction(context.Background(), &entity.Prediction{
		UserID:        "u1",
		MatchID:       "m1",
		WydadScore:    -1,
		OpponentScore: 0,
	})

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestSubmitPrediction_MatchNotFound(t *testing.T) {
	matchRepo := new(MockMatchRepo)
	svc := NewPredictionService(new(MockPredictionRepo), matchRepo)

	matchRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.SubmitPrediction(context.Background(), &entity.Prediction{
		UserID:  "u1",
		MatchID: "ghost",
	})

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestSubmitPrediction_FinishedMatchRejected(t *testing.T) {
	matchRepo := new(MockMatchRepo)
	svc := NewPredictionService(new(MockPredictionRepo), matchRepo)

	matchRepo.On("GetByID", mock.Anything, "m1").
		Return(&entity.Match{ID: "m1", Status: entity.MatchStatusFinished}, nil)

	_, err := svc.SubmitPrediction(context.Background(), &entity.Prediction{
		UserID:  "u1",
		MatchID: "m1",
	})

	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestGetUserPrediction_NotFound(t *testing.T) {
	predictionRepo := new(MockPredictionRepo)
	svc := NewPredictionService(predictionRepo, new(MockMatchRepo))

	predictionRepo.On("GetByUserAndMatch", mock.Anything, "u1", "m1").Return(nil, nil)

	_, err := svc.GetUserPrediction(context.Background(), "u1", "m1")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
