package entity

import (
	"time"
)

// Возможные исходы матча с точки зрения болельщика
const (
	ResultWin  = "win"
	ResultDraw = "draw"
	ResultLose = "lose"
)

// Типы дополнительных событий (рынков) в прогнозе
const (
	EventFirstScorer   = "first_scorer"
	EventLastScorer    = "last_scorer"
	EventBrace         = "brace"
	EventHatTrick      = "hat_trick"
	EventAnytimeWinner = "anytime_winner"
	EventPenaltyScorer = "penalty_scorer"

	// Интервальные рынки: гол в одном из шести фиксированных отрезков
	EventInterval0_15  = "interval_0_15"
	EventInterval16_30 = "interval_16_30"
	EventInterval31_45 = "interval_31_45"
	EventInterval46_60 = "interval_46_60"
	EventInterval61_75 = "interval_61_75"
	EventInterval76_90 = "interval_76_90"
)

// Prediction представляет прогноз пользователя на один матч.
// На пару (UserID, MatchID) существует не больше одного прогноза:
// повторная отправка обновляет документ, а не добавляет новый.
type Prediction struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	MatchID       string          `json:"matchId"`
	WydadScore    int             `json:"wydadScore"`
	OpponentScore int             `json:"opponentScore"`
	// Result — заявленный исход (win/draw/lose). Поле информационное:
	// при сохранении пересчитывается из счёта и в подсчёте очков не участвует.
	Result         string          `json:"result"`
	// Scorers и AdvancedEvents сериализуются без omitempty: повторная
	// отправка обновляет документ на месте, и убранные рынки должны
	// исчезнуть из него, а не пережить отправку.
	Scorers        []string        `json:"scorers"`
	AdvancedEvents []AdvancedEvent `json:"advancedEvents"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// AdvancedEvent представляет один дополнительный рынок прогноза.
// Player может быть пустым для рынков, не привязанных к игроку (интервалы).
type AdvancedEvent struct {
	Type   string `json:"type"`
	Player string `json:"player,omitempty"`
}

// ImpliedResult вычисляет исход из прогнозируемого счёта
func (p *Prediction) ImpliedResult() string {
	return ResultFromScore(p.WydadScore, p.OpponentScore)
}

// ResultFromScore возвращает исход по счёту со стороны Видада
func ResultFromScore(wydadScore, opponentScore int) string {
	switch {
	case wydadScore > opponentScore:
		return ResultWin
	case wydadScore < opponentScore:
		return ResultLose
	default:
		return ResultDraw
	}
}
