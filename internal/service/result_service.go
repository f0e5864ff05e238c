package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/domain/repository"
	apperrors "github.com/yourusername/predictions-api/internal/pkg/errors"
)

// ResultService реализует публикацию официальных результатов матчей.
// Публикация — центральная операция системы: после неё пересчитываются
// статистика и значки всех сделавших прогноз, а кеши рейтингов сбрасываются.
type ResultService struct {
	resultRepo     repository.ResultRepository
	matchRepo      repository.MatchRepository
	predictionRepo repository.PredictionRepository
	statsService   *StatsService
	rankingService *RankingService
}

// NewResultService создает новый сервис результатов
func NewResultService(
	resultRepo repository.ResultRepository,
	matchRepo repository.MatchRepository,
	predictionRepo repository.PredictionRepository,
	statsService *StatsService,
	rankingService *RankingService,
) *ResultService {
	return &ResultService{
		resultRepo:     resultRepo,
		matchRepo:      matchRepo,
		predictionRepo: predictionRepo,
		statsService:   statsService,
		rankingService: rankingService,
	}
}

// PublishResult публикует результат матча. Повторная публикация
// идемпотентно перезаписывает документ и запускает пересчёт заново.
func (s *ResultService) PublishResult(ctx context.Context, result *entity.MatchResult) (*entity.MatchResult, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: result is required", apperrors.ErrValidation)
	}
	if result.MatchID == "" {
		return nil, fmt.Errorf("%w: matchId is required", apperrors.ErrValidation)
	}
	if result.WydadScore < 0 || result.OpponentScore < 0 {
		return nil, fmt.Errorf("%w: scores must be non-negative", apperrors.ErrValidation)
	}

	match, err := s.matchRepo.GetByID(ctx, result.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	if match == nil {
		return nil, fmt.Errorf("%w: match %s", apperrors.ErrNotFound, result.MatchID)
	}

	stored, err := s.resultRepo.Upsert(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("failed to store result: %w", err)
	}

	if _, err := s.matchRepo.SetStatus(ctx, result.MatchID, entity.MatchStatusFinished); err != nil {
		// Результат уже сохранён; незакрытый матч чинится повторной публикацией
		log.Printf("[ResultService] Failed to mark match %s as finished: %v", result.MatchID, err)
	}

	s.recalculateAll(ctx, result.MatchID)
	s.rankingService.InvalidateAll(ctx)

	log.Printf("[ResultService] Published result for match %s: %d-%d",
		result.MatchID, result.WydadScore, result.OpponentScore)
	return stored, nil
}

// GetMatchResult возвращает опубликованный результат матча
func (s *ResultService) GetMatchResult(ctx context.Context, matchID string) (*entity.MatchResult, error) {
	r, err := s.resultRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: result for match %s", apperrors.ErrNotFound, matchID)
	}
	return r, nil
}

// recalculateAll пересчитывает статистику каждого пользователя, сделавшего
// прогноз на матч. Ошибка по одному пользователю не прерывает остальных.
func (s *ResultService) recalculateAll(ctx context.Context, matchID string) {
	preds, err := s.predictionRepo.GetByMatch(ctx, matchID)
	if err != nil {
		log.Printf("[ResultService] Failed to load predictions for match %s: %v", matchID, err)
		return
	}
	for _, p := range preds {
		if _, err := s.statsService.Recalculate(ctx, p.UserID); err != nil {
			log.Printf("[ResultService] Failed to recalculate stats for user %s: %v", p.UserID, err)
		}
	}
}
