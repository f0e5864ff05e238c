package service

import (
	"context"
	"fmt"

	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/domain/repository"
	apperrors "github.com/yourusername/predictions-api/internal/pkg/errors"
	"github.com/yourusername/predictions-api/internal/scoring"
)

// BreakdownItem — одна строка расшифровки с человекочитаемой подписью
type BreakdownItem struct {
	Label   string `json:"label"`
	Points  int    `json:"points"`
	Reached bool   `json:"reached"`
}

// BreakdownResponse — полная расшифровка очков прогноза на матч
type BreakdownResponse struct {
	UserID  string          `json:"userId"`
	MatchID string          `json:"matchId"`
	Total   int             `json:"total"`
	Items   []BreakdownItem `json:"items"`
}

// BreakdownService строит построчную расшифровку очков поверх движка
type BreakdownService struct {
	predictionRepo repository.PredictionRepository
	resultRepo     repository.ResultRepository
	leagueRepo     repository.LeagueRepository
}

// NewBreakdownService создает новый сервис расшифровки
func NewBreakdownService(
	predictionRepo repository.PredictionRepository,
	resultRepo repository.ResultRepository,
	leagueRepo repository.LeagueRepository,
) *BreakdownService {
	return &BreakdownService{
		predictionRepo: predictionRepo,
		resultRepo:     resultRepo,
		leagueRepo:     leagueRepo,
	}
}

// GetBreakdown возвращает расшифровку очков прогноза. При leagueID == ""
// берутся веса по умолчанию, иначе веса лиги. Неопубликованный результат —
// нормальное состояние: все строки дают ноль.
func (s *BreakdownService) GetBreakdown(ctx context.Context, userID, matchID, leagueID string) (*BreakdownResponse, error) {
	p, err := s.predictionRepo.GetByUserAndMatch(ctx, userID, matchID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: prediction for user %s on match %s", apperrors.ErrNotFound, userID, matchID)
	}

	cfg := entity.DefaultBreakdownScoring()
	if leagueID != "" {
		league, err := s.leagueRepo.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		if league == nil {
			return nil, fmt.Errorf("%w: league %s", apperrors.ErrNotFound, leagueID)
		}
		cfg = league.Scoring
	}

	r, err := s.resultRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	b := scoring.ComputeScore(p, r, cfg)

	items := make([]BreakdownItem, 0, 2+len(p.Scorers)+len(b.Events))
	items = append(items, BreakdownItem{
		Label:   fmt.Sprintf("Exact score %d-%d", p.WydadScore, p.OpponentScore),
		Points:  pointsIf(b.Details.ExactScore, cfg.ExactScore),
		Reached: b.Details.ExactScore,
	})
	items = append(items, BreakdownItem{
		Label:   "Correct result (" + p.ImpliedResult() + ")",
		Points:  pointsIf(b.Details.CorrectResult, cfg.CorrectResult),
		Reached: b.Details.CorrectResult,
	})

	for _, name := range p.Scorers {
		reached := r != nil && containsString(r.Scorers, name)
		items = append(items, BreakdownItem{
			Label:   "Scorer: " + name,
			Points:  pointsIf(reached, cfg.PerScorer),
			Reached: reached,
		})
	}

	for _, ev := range b.Events {
		items = append(items, BreakdownItem{
			Label:   eventLabel(ev),
			Points:  ev.PointsEarned,
			Reached: ev.PointsEarned > 0,
		})
	}

	return &BreakdownResponse{
		UserID:  userID,
		MatchID: matchID,
		Total:   b.Total,
		Items:   items,
	}, nil
}

// eventLabel строит подпись строки дополнительного рынка
func eventLabel(ev scoring.EventScore) string {
	switch ev.Type {
	case entity.EventFirstScorer:
		return "First scorer: " + ev.Player
	case entity.EventLastScorer:
		return "Last scorer: " + ev.Player
	case entity.EventBrace:
		return "Brace by " + ev.Player
	case entity.EventHatTrick:
		return "Hat-trick by " + ev.Player
	case entity.EventAnytimeWinner:
		return "Scores in a win: " + ev.Player
	case entity.EventPenaltyScorer:
		return "Penalty scored by " + ev.Player
	}
	if start, end, ok := scoring.ParseInterval(ev.Type); ok {
		return fmt.Sprintf("Goal between minutes %d and %d", start, end)
	}
	return ev.Type
}

func pointsIf(reached bool, points int) int {
	if reached {
		return points
	}
	return 0
}

func containsString(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
