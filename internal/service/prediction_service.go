package service

import (
	"context"
	"fmt"

	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/domain/repository"
	apperrors "github.com/yourusername/predictions-api/internal/pkg/errors"
)

// PredictionService реализует бизнес-логику приёма прогнозов
type PredictionService struct {
	predictionRepo repository.PredictionRepository
	matchRepo      repository.MatchRepository
}

// NewPredictionService создает новый сервис прогнозов
func NewPredictionService(
	predictionRepo repository.PredictionRepository,
	matchRepo repository.MatchRepository,
) *PredictionService {
	return &PredictionService{
		predictionRepo: predictionRepo,
		matchRepo:      matchRepo,
	}
}

// SubmitPrediction принимает прогноз пользователя. Повторная отправка на
// тот же матч обновляет существующий прогноз. Прогнозы на завершённые
// матчи не принимаются.
func (s *PredictionService) SubmitPrediction(ctx context.Context, p *entity.Prediction) (*entity.Prediction, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: prediction is required", apperrors.ErrValidation)
	}
	if p.UserID == "" || p.MatchID == "" {
		return nil, fmt.Errorf("%w: userId and matchId are required", apperrors.ErrValidation)
	}
	if p.WydadScore < 0 || p.OpponentScore < 0 {
		return nil, fmt.Errorf("%w: scores must be non-negative", apperrors.ErrValidation)
	}
	// Бомбардиров не может быть больше, чем прогнозируемых голов Видада
	if len(p.Scorers) > p.WydadScore {
		return nil, fmt.Errorf("%w: scorers (%d) exceed predicted goals (%d)",
			apperrors.ErrValidation, len(p.Scorers), p.WydadScore)
	}
	for _, ev := range p.AdvancedEvents {
		if ev.Type == "" {
			return nil, fmt.Errorf("%w: advanced event type is required", apperrors.ErrValidation)
		}
	}

	match, err := s.matchRepo.GetByID(ctx, p.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	if match == nil {
		return nil, fmt.Errorf("%w: match %s", apperrors.ErrNotFound, p.MatchID)
	}
	if match.Status == entity.MatchStatusFinished {
		return nil, fmt.Errorf("%w: match %s is finished, predictions are closed",
			apperrors.ErrConflict, p.MatchID)
	}

	// Заявленный исход не принимается на веру: пересчитываем из счёта
	p.Result = p.ImpliedResult()

	return s.predictionRepo.Upsert(ctx, p)
}

// GetUserPrediction возвращает прогноз пользователя на матч
func (s *PredictionService) GetUserPrediction(ctx context.Context, userID, matchID string) (*entity.Prediction, error) {
	p, err := s.predictionRepo.GetByUserAndMatch(ctx, userID, matchID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: prediction for user %s on match %s", apperrors.ErrNotFound, userID, matchID)
	}
	return p, nil
}

// GetMatchPredictions возвращает все прогнозы на матч
func (s *PredictionService) GetMatchPredictions(ctx context.Context, matchID string) ([]entity.Prediction, error) {
	return s.predictionRepo.GetByMatch(ctx, matchID)
}

// GetUserPredictions возвращает все прогнозы пользователя
func (s *PredictionService) GetUserPredictions(ctx context.Context, userID string) ([]entity.Prediction, error) {
	return s.predictionRepo.GetByUser(ctx, userID)
}
