package service

import (
	"context"
	"fmt"

	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/domain/repository"
	apperrors "github.com/yourusername/predictions-api/internal/pkg/errors"
)

// MatchService реализует бизнес-логику календаря матчей
type MatchService struct {
	matchRepo repository.MatchRepository
}

// NewMatchService создает новый сервис матчей
func NewMatchService(matchRepo repository.MatchRepository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

// CreateMatch добавляет матч в календарь
func (s *MatchService) CreateMatch(ctx context.Context, match *entity.Match) (*entity.Match, error) {
	if match == nil || match.Opponent == "" {
		return nil, fmt.Errorf("%w: opponent is required", apperrors.ErrValidation)
	}
	if match.KickoffAt.IsZero() {
		return nil, fmt.Errorf("%w: kickoffAt is required", apperrors.ErrValidation)
	}
	if match.Status == "" {
		match.Status = entity.MatchStatusScheduled
	}
	return s.matchRepo.Create(ctx, match)
}

// GetMatch возвращает матч по идентификатору
func (s *MatchService) GetMatch(ctx context.Context, id string) (*entity.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, fmt.Errorf("%w: match %s", apperrors.ErrNotFound, id)
	}
	return match, nil
}

// ListMatches возвращает все матчи календаря
func (s *MatchService) ListMatches(ctx context.Context) ([]entity.Match, error) {
	return s.matchRepo.GetAll(ctx)
}
