package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/domain/repository"
	apperrors "github.com/yourusername/predictions-api/internal/pkg/errors"
	"github.com/yourusername/predictions-api/internal/scoring"
)

// StatsService реализует пересчёт накопительной статистики и выдачу значков
type StatsService struct {
	statsRepo      repository.StatsRepository
	predictionRepo repository.PredictionRepository
	resultRepo     repository.ResultRepository
	matchRepo      repository.MatchRepository
}

// NewStatsService создает новый сервис статистики
func NewStatsService(
	statsRepo repository.StatsRepository,
	predictionRepo repository.PredictionRepository,
	resultRepo repository.ResultRepository,
	matchRepo repository.MatchRepository,
) *StatsService {
	return &StatsService{
		statsRepo:      statsRepo,
		predictionRepo: predictionRepo,
		resultRepo:     resultRepo,
		matchRepo:      matchRepo,
	}
}

// GetUserStats возвращает статистику пользователя
func (s *StatsService) GetUserStats(ctx context.Context, userID string) (*entity.UserStats, error) {
	stats, err := s.statsRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, fmt.Errorf("%w: stats for user %s", apperrors.ErrNotFound, userID)
	}
	return stats, nil
}

// Recalculate пересчитывает статистику пользователя с нуля по всем его
// прогнозам и опубликованным результатам. Счётчики перезаписываются,
// значки только добавляются: однажды выданный значок не отзывается.
func (s *StatsService) Recalculate(ctx context.Context, userID string) (*entity.UserStats, error) {
	preds, err := s.predictionRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}

	results, err := s.resultRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}
	resultByMatch := make(map[string]entity.MatchResult, len(results))
	for _, r := range results {
		resultByMatch[r.MatchID] = r
	}

	matches, err := s.matchRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	kickoffByMatch := make(map[string]time.Time, len(matches))
	for _, m := range matches {
		kickoffByMatch[m.ID] = m.KickoffAt
	}

	// Статистика считается по глобальным весам; лиговые веса влияют
	// только на таблицы лиг
	cfg := entity.DefaultBreakdownScoring()

	stats := entity.UserStats{
		UserID:      userID,
		Predictions: len(preds),
	}
	timeline := make([]scoredMatch, 0, len(preds))

	for i := range preds {
		r, ok := resultByMatch[preds[i].MatchID]
		if !ok {
			continue
		}
		b := scoring.ComputeScore(&preds[i], &r, cfg)
		stats.TotalPoints += b.Total
		if b.Details.ExactScore {
			stats.ExactScores++
		}
		if b.Details.CorrectResult {
			stats.CorrectResults++
		}
		timeline = append(timeline, scoredMatch{
			kickoff: kickoffByMatch[preds[i].MatchID],
			correct: b.Details.CorrectResult,
		})
	}

	stats.BestStreak = bestStreak(timeline)

	existing, err := s.statsRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing stats: %w", err)
	}
	if existing != nil {
		stats.ID = existing.ID
		stats.Badges = existing.Badges
	}

	awardBadges(&stats)

	return s.statsRepo.Upsert(ctx, &stats)
}

// scoredMatch — один оценённый прогноз на временной шкале пользователя
type scoredMatch struct {
	kickoff time.Time
	correct bool
}

// bestStreak возвращает длиннейшую серию подряд угаданных исходов по
// матчам, упорядоченным по дате начала
func bestStreak(timeline []scoredMatch) int {
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].kickoff.Before(timeline[j].kickoff)
	})
	best, cur := 0, 0
	for _, t := range timeline {
		if t.correct {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 0
		}
	}
	return best
}

// awardBadges выдает значки по порогам. Пороги проверяются по свежим
// счётчикам, но уже имеющиеся значки не перепроверяются и не отзываются.
func awardBadges(stats *entity.UserStats) {
	award := func(code, name string, reached bool) {
		if reached && !stats.HasBadge(code) {
			stats.Badges = append(stats.Badges, entity.Badge{
				Code:     code,
				Name:     name,
				EarnedAt: time.Now(),
			})
		}
	}

	award(entity.BadgeFirstPrediction, "First prediction", stats.Predictions >= 1)
	award(entity.BadgeFirstExactScore, "First exact score", stats.ExactScores >= 1)
	award(entity.BadgePoints100, "100 points club", stats.TotalPoints >= 100)
	award(entity.BadgeFiveCorrectStreak, "Five in a row", stats.BestStreak >= 5)
}
