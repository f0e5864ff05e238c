package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/domain/repository"
	apperrors "github.com/yourusername/predictions-api/internal/pkg/errors"
)

// LeagueService реализует бизнес-логику лиг
type LeagueService struct {
	leagueRepo repository.LeagueRepository
}

// NewLeagueService создает новый сервис лиг
func NewLeagueService(leagueRepo repository.LeagueRepository) *LeagueService {
	return &LeagueService{leagueRepo: leagueRepo}
}

// CreateLeague создает лигу. Создатель автоматически становится первым
// участником. Если веса не заданы, берутся лиговые веса по умолчанию.
func (s *LeagueService) CreateLeague(ctx context.Context, name, ownerID string, scoring *entity.ScoringConfig) (*entity.League, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: league name is required", apperrors.ErrValidation)
	}
	if ownerID == "" {
		return nil, fmt.Errorf("%w: ownerId is required", apperrors.ErrValidation)
	}

	cfg := entity.DefaultLeagueScoring()
	if scoring != nil && !scoring.IsZero() {
		cfg = *scoring
	}

	league, err := s.leagueRepo.Create(ctx, &entity.League{
		Name:    name,
		OwnerID: ownerID,
		Members: []string{ownerID},
		Scoring: cfg,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[LeagueService] Created league %s (%s) owned by %s", league.ID, league.Name, ownerID)
	return league, nil
}

// JoinLeague добавляет пользователя в лигу. Повторное вступление — конфликт.
func (s *LeagueService) JoinLeague(ctx context.Context, leagueID, userID string) (*entity.League, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", apperrors.ErrValidation)
	}

	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if league == nil {
		return nil, fmt.Errorf("%w: league %s", apperrors.ErrNotFound, leagueID)
	}
	if league.HasMember(userID) {
		return nil, fmt.Errorf("%w: user %s is already a member of league %s",
			apperrors.ErrConflict, userID, leagueID)
	}

	return s.leagueRepo.SetMembers(ctx, leagueID, append(league.Members, userID))
}

// GetLeague возвращает лигу по идентификатору
func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (*entity.League, error) {
	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if league == nil {
		return nil, fmt.Errorf("%w: league %s", apperrors.ErrNotFound, leagueID)
	}
	return league, nil
}

// ListLeagues возвращает все лиги
func (s *LeagueService) ListLeagues(ctx context.Context) ([]entity.League, error) {
	return s.leagueRepo.GetAll(ctx)
}
