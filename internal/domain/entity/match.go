package entity

import (
	"time"
)

// Статусы матча
const (
	MatchStatusScheduled = "scheduled"
	MatchStatusFinished  = "finished"
)

// Типы событий официального результата
const (
	MatchEventGoal    = "goal"
	MatchEventPenalty = "penalty"
	MatchEventCard    = "card"
	// MatchEventCSC — автогол ("contre son camp"). Учитывается только
	// в интервальных рынках, но не в рынках бомбардиров.
	MatchEventCSC = "csc"
)

// Уточнение типа гола в событии
const (
	GoalTypePenaltyScored = "penalty_scored"
	GoalTypePenaltyMissed = "penalty_missed"
)

// Match представляет матч Видада в календаре
type Match struct {
	ID          string    `json:"id"`
	Opponent    string    `json:"opponent"`
	Competition string    `json:"competition,omitempty"`
	Home        bool      `json:"home"`
	KickoffAt   time.Time `json:"kickoffAt"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MatchResult представляет официальный результат матча, публикуемый
// администратором. На матч существует ровно один результат: повторная
// публикация идемпотентно перезаписывает документ.
type MatchResult struct {
	ID            string `json:"id"`
	MatchID       string `json:"matchId"`
	WydadScore    int    `json:"wydadScore"`
	OpponentScore int    `json:"opponentScore"`
	// Scorers — авторы обычных голов и пенальти (без автоголов).
	// Scorers и Events сериализуются без omitempty: повторная публикация
	// должна перезаписать и пустые массивы, иначе отозванные события
	// переживут перепубликацию.
	Scorers   []string     `json:"scorers"`
	Events    []MatchEvent `json:"events"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// MatchEvent представляет одно событие матча в официальном результате.
// Order — порядковый номер (с 1) среди результативных событий; порядок
// массива авторитетен для рынков первого/последнего бомбардира.
type MatchEvent struct {
	Type     string `json:"type"`
	Player   string `json:"player,omitempty"`
	Minute   int    `json:"minute"`
	GoalType string `json:"goalType,omitempty"`
	Order    int    `json:"order,omitempty"`
}

// ImpliedResult вычисляет реальный исход из официального счёта
func (r *MatchResult) ImpliedResult() string {
	return ResultFromScore(r.WydadScore, r.OpponentScore)
}
