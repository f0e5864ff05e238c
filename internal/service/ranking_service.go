package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/domain/repository"
	apperrors "github.com/yourusername/predictions-api/internal/pkg/errors"
	"github.com/yourusername/predictions-api/internal/scoring"
)

const (
	globalRankingCacheKey    = "ranking:global"
	leagueRankingCachePrefix = "ranking:league:"
	rankingCacheTTL          = 5 * time.Minute
)

// RankingEntry — строка таблицы лидеров
type RankingEntry struct {
	UserID         string `json:"userId"`
	Points         int    `json:"points"`
	Predictions    int    `json:"predictions"`
	ExactScores    int    `json:"exactScores"`
	CorrectResults int    `json:"correctResults"`
}

// RankingService строит таблицы лидеров лиг и глобальную таблицу
type RankingService struct {
	leagueRepo     repository.LeagueRepository
	predictionRepo repository.PredictionRepository
	resultRepo     repository.ResultRepository
	cacheRepo      repository.CacheRepository
}

// NewRankingService создает новый сервис рейтингов. cacheRepo может быть
// nil — тогда таблицы считаются на каждый запрос без кеша.
func NewRankingService(
	leagueRepo repository.LeagueRepository,
	predictionRepo repository.PredictionRepository,
	resultRepo repository.ResultRepository,
	cacheRepo repository.CacheRepository,
) *RankingService {
	return &RankingService{
		leagueRepo:     leagueRepo,
		predictionRepo: predictionRepo,
		resultRepo:     resultRepo,
		cacheRepo:      cacheRepo,
	}
}

// BuildRanking сворачивает прогнозы участников в таблицу лидеров по весам
// cfg. Чистая функция: порядок при равенстве очков определяется порядком
// появления участника во входных данных (сортировка стабильна).
func BuildRanking(members []string, predictions []entity.Prediction, results map[string]entity.MatchResult, cfg entity.ScoringConfig) []RankingEntry {
	index := make(map[string]int, len(members))
	entries := make([]RankingEntry, 0, len(members))
	for _, userID := range members {
		if _, ok := index[userID]; ok {
			continue
		}
		index[userID] = len(entries)
		entries = append(entries, RankingEntry{UserID: userID})
	}

	for i := range predictions {
		pos, ok := index[predictions[i].UserID]
		if !ok {
			continue
		}
		entries[pos].Predictions++

		r, ok := results[predictions[i].MatchID]
		if !ok {
			continue
		}
		b := scoring.ComputeScore(&predictions[i], &r, cfg)
		entries[pos].Points += b.Total
		if b.Details.ExactScore {
			entries[pos].ExactScores++
		}
		if b.Details.CorrectResult {
			entries[pos].CorrectResults++
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	return entries
}

// LeagueRanking возвращает таблицу лидеров лиги по её весам
func (s *RankingService) LeagueRanking(ctx context.Context, leagueID string) ([]RankingEntry, error) {
	cacheKey := leagueRankingCachePrefix + leagueID
	if cached, ok := s.fromCache(cacheKey); ok {
		return cached, nil
	}

	league, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if league == nil {
		return nil, fmt.Errorf("%w: league %s", apperrors.ErrNotFound, leagueID)
	}

	entries, err := s.build(ctx, league.Members, league.Scoring)
	if err != nil {
		return nil, err
	}
	s.toCache(cacheKey, entries)
	return entries, nil
}

// GlobalRanking возвращает общую таблицу по всем пользователям с хотя бы
// одним прогнозом, по глобальным весам по умолчанию
func (s *RankingService) GlobalRanking(ctx context.Context) ([]RankingEntry, error) {
	if cached, ok := s.fromCache(globalRankingCacheKey); ok {
		return cached, nil
	}

	preds, err := s.predictionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	members := make([]string, 0, len(preds))
	seen := make(map[string]bool, len(preds))
	for _, p := range preds {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			members = append(members, p.UserID)
		}
	}

	results, err := s.resultsByMatch(ctx)
	if err != nil {
		return nil, err
	}

	entries := BuildRanking(members, preds, results, entity.DefaultBreakdownScoring())
	s.toCache(globalRankingCacheKey, entries)
	return entries, nil
}

// InvalidateAll сбрасывает кешированные таблицы после публикации результата
func (s *RankingService) InvalidateAll(ctx context.Context) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Delete(globalRankingCacheKey); err != nil {
		log.Printf("[RankingService] Failed to invalidate global ranking cache: %v", err)
	}
	leagues, err := s.leagueRepo.GetAll(ctx)
	if err != nil {
		log.Printf("[RankingService] Failed to list leagues for cache invalidation: %v", err)
		return
	}
	for _, l := range leagues {
		if err := s.cacheRepo.Delete(leagueRankingCachePrefix + l.ID); err != nil {
			log.Printf("[RankingService] Failed to invalidate ranking cache for league %s: %v", l.ID, err)
		}
	}
}

func (s *RankingService) build(ctx context.Context, members []string, cfg entity.ScoringConfig) ([]RankingEntry, error) {
	preds, err := s.predictionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.resultsByMatch(ctx)
	if err != nil {
		return nil, err
	}
	return BuildRanking(members, preds, results, cfg), nil
}

func (s *RankingService) resultsByMatch(ctx context.Context) (map[string]entity.MatchResult, error) {
	results, err := s.resultRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	byMatch := make(map[string]entity.MatchResult, len(results))
	for _, r := range results {
		byMatch[r.MatchID] = r
	}
	return byMatch, nil
}

func (s *RankingService) fromCache(key string) ([]RankingEntry, bool) {
	if s.cacheRepo == nil {
		return nil, false
	}
	var entries []RankingEntry
	if err := s.cacheRepo.GetJSON(key, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (s *RankingService) toCache(key string, entries []RankingEntry) {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.SetJSON(key, entries, rankingCacheTTL); err != nil {
		log.Printf("[RankingService] Failed to cache ranking %s: %v", key, err)
	}
}
