package entity

import (
	"time"
)

// ScoringConfig содержит веса начисления очков. Отсутствующий в документе
// ключ декодируется в ноль и просто не приносит очков.
type ScoringConfig struct {
	ExactScore    int `json:"exactScore"`
	CorrectResult int `json:"correctResult"`
	PerScorer     int `json:"perScorer"`
	FirstScorer   int `json:"firstScorer"`
	LastScorer    int `json:"lastScorer"`
	Brace         int `json:"brace"`
	HatTrick      int `json:"hatTrick"`
	AnytimeWinner int `json:"anytimeWinner"`
	GoalInterval  int `json:"goalInterval"`
	PenaltyScorer int `json:"penaltyScorer"`
}

// DefaultBreakdownScoring — веса по умолчанию для расшифровки очков и
// глобального рейтинга, когда лига не указана.
//
// ВНИМАНИЕ: набор отличается от DefaultLeagueScoring. Оба набора
// унаследованы от исходного продукта и сознательно не объединены.
func DefaultBreakdownScoring() ScoringConfig {
	return ScoringConfig{
		ExactScore:    10,
		CorrectResult: 5,
		PerScorer:     3,
		FirstScorer:   5,
		LastScorer:    5,
		Brace:         7,
		HatTrick:      12,
		AnytimeWinner: 5,
		GoalInterval:  3,
		PenaltyScorer: 4,
	}
}

// DefaultLeagueScoring — веса, назначаемые новой лиге при создании,
// если создатель не задал собственные.
func DefaultLeagueScoring() ScoringConfig {
	return ScoringConfig{
		ExactScore:    5,
		CorrectResult: 1,
		PerScorer:     3,
		FirstScorer:   5,
		LastScorer:    5,
		Brace:         8,
		HatTrick:      15,
		AnytimeWinner: 5,
		GoalInterval:  3,
		PenaltyScorer: 4,
	}
}

// IsZero сообщает, что ни один вес не задан
func (c ScoringConfig) IsZero() bool {
	return c == ScoringConfig{}
}

// League представляет лигу: группу пользователей с собственными весами
// начисления очков и закрытой таблицей лидеров.
type League struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	OwnerID   string        `json:"ownerId"`
	Members   []string      `json:"members"`
	Scoring   ScoringConfig `json:"scoring"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// HasMember проверяет членство пользователя в лиге
func (l *League) HasMember(userID string) bool {
	for _, id := range l.Members {
		if id == userID {
			return true
		}
	}
	return false
}
