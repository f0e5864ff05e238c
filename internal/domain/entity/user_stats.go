package entity

import (
	"time"
)

// Коды значков (бейджей)
const (
	BadgeFirstPrediction   = "first_prediction"
	BadgeFirstExactScore   = "first_exact_score"
	BadgePoints100         = "points_100"
	BadgeFiveCorrectStreak = "five_correct_streak"
)

// Badge представляет заработанный пользователем значок.
// Однажды выданный значок не отзывается.
type Badge struct {
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	EarnedAt time.Time `json:"earnedAt"`
}

// UserStats представляет накопительную статистику пользователя по всем
// матчам. Пересчитывается после каждой публикации результата.
type UserStats struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	TotalPoints    int       `json:"totalPoints"`
	Predictions    int       `json:"predictions"`
	ExactScores    int       `json:"exactScores"`
	CorrectResults int       `json:"correctResults"`
	// BestStreak — длиннейшая серия подряд угаданных исходов
	// (по матчам, упорядоченным по дате начала)
	BestStreak int       `json:"bestStreak"`
	Badges     []Badge   `json:"badges,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// HasBadge проверяет, выдан ли значок с данным кодом
func (s *UserStats) HasBadge(code string) bool {
	for _, b := range s.Badges {
		if b.Code == code {
			return true
		}
	}
	return false
}
