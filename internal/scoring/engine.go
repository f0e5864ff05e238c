// Package scoring содержит чистый движок подсчёта очков: сравнение
// прогноза с официальным результатом матча. Движок не знает ни о
// хранилище, ни о HTTP и не имеет побочных эффектов — при одинаковых
// входах всегда возвращает одинаковый Breakdown.
package scoring

import (
	"strconv"
	"strings"

	"github.com/yourusername/predictions-api/internal/domain/entity"
)

// Details содержит булевы флаги двух базовых рынков
type Details struct {
	ExactScore    bool `json:"exactScore"`
	CorrectResult bool `json:"correctResult"`
}

// EventScore — копия дополнительного события прогноза, аннотированная
// заработанными очками. Движок НЕ мутирует события вызывающей стороны:
// аннотация возвращается отдельным срезом.
type EventScore struct {
	Type         string `json:"type"`
	Player       string `json:"player,omitempty"`
	PointsEarned int    `json:"pointsEarned"`
}

// Breakdown — итог подсчёта: сумма очков, флаги базовых рынков и
// аннотированные дополнительные события.
type Breakdown struct {
	Total   int          `json:"total"`
	Details Details      `json:"details"`
	Events  []EventScore `json:"events,omitempty"`
}

// ComputeScore сравнивает прогноз с официальным результатом и возвращает
// очки по весам cfg. Функция никогда не паникует: отсутствующий результат
// (результат ещё не опубликован — нормальное состояние) даёт нулевой
// Breakdown. Все вклады неотрицательны и аддитивны.
func ComputeScore(p *entity.Prediction, r *entity.MatchResult, cfg entity.ScoringConfig) Breakdown {
	var b Breakdown
	if p == nil || r == nil {
		return b
	}

	// 1. Верный исход: сравниваем исходы, вычисленные из счёта прогноза
	// и из официального счёта. Заявленное пользователем поле result
	// в подсчёте не участвует.
	predResult := p.ImpliedResult()
	realResult := r.ImpliedResult()
	if predResult == realResult {
		b.Total += cfg.CorrectResult
		b.Details.CorrectResult = true
	}

	// 2. Точный счёт
	if p.WydadScore == r.WydadScore && p.OpponentScore == r.OpponentScore {
		b.Total += cfg.ExactScore
		b.Details.ExactScore = true
	}

	// 3. Бомбардиры "в любое время": каждое угаданное имя приносит очки,
	// дубликаты в прогнозе считаются независимо (без дедупликации)
	for _, name := range p.Scorers {
		if containsName(r.Scorers, name) {
			b.Total += cfg.PerScorer
		}
	}

	// 4. Дополнительные рынки. Оцениваются только когда заполнены и
	// события прогноза, и события результата; неизвестный тип приносит 0.
	if len(p.AdvancedEvents) > 0 {
		b.Events = make([]EventScore, 0, len(p.AdvancedEvents))
		for _, ev := range p.AdvancedEvents {
			earned := 0
			if len(r.Events) > 0 {
				earned = scoreAdvancedEvent(ev, r, realResult, cfg)
			}
			b.Total += earned
			b.Events = append(b.Events, EventScore{
				Type:         ev.Type,
				Player:       ev.Player,
				PointsEarned: earned,
			})
		}
	}

	return b
}

// scoreAdvancedEvent оценивает один дополнительный рынок
func scoreAdvancedEvent(ev entity.AdvancedEvent, r *entity.MatchResult, realResult string, cfg entity.ScoringConfig) int {
	switch ev.Type {
	case entity.EventFirstScorer:
		// Первое результативное событие по порядку массива (не по минуте)
		events := scoringEvents(r.Events)
		if len(events) > 0 && events[0].Player == ev.Player {
			return cfg.FirstScorer
		}

	case entity.EventLastScorer:
		events := scoringEvents(r.Events)
		if len(events) > 0 && events[len(events)-1].Player == ev.Player {
			return cfg.LastScorer
		}

	case entity.EventBrace:
		if countPlayerGoals(r.Events, ev.Player) >= 2 {
			return cfg.Brace
		}

	case entity.EventHatTrick:
		// Голы и пенальти суммируются: 2 гола + пенальти = хет-трик
		if countPlayerGoals(r.Events, ev.Player) >= 3 {
			return cfg.HatTrick
		}

	case entity.EventAnytimeWinner:
		if countPlayerGoals(r.Events, ev.Player) >= 1 && realResult == entity.ResultWin {
			return cfg.AnytimeWinner
		}

	case entity.EventPenaltyScorer:
		for _, e := range r.Events {
			if e.Type == entity.MatchEventPenalty && e.GoalType == entity.GoalTypePenaltyScored && e.Player == ev.Player {
				return cfg.PenaltyScorer
			}
		}

	default:
		if start, end, ok := ParseInterval(ev.Type); ok {
			// Интервальный рынок срабатывает от ЛЮБОГО гола в окне,
			// включая автоголы, и не привязан к игроку
			for _, e := range r.Events {
				if !isGoalLike(e.Type) {
					continue
				}
				if e.Minute >= start && e.Minute <= end {
					return cfg.GoalInterval
				}
			}
		}
	}
	return 0
}

// scoringEvents отбирает результативные события (гол, пенальти, автогол)
// с сохранением порядка массива
func scoringEvents(events []entity.MatchEvent) []entity.MatchEvent {
	out := make([]entity.MatchEvent, 0, len(events))
	for _, e := range events {
		if isGoalLike(e.Type) {
			out = append(out, e)
		}
	}
	return out
}

// countPlayerGoals считает голы и пенальти игрока. Автоголы не считаются:
// они не принадлежат бомбардиру.
func countPlayerGoals(events []entity.MatchEvent, player string) int {
	n := 0
	for _, e := range events {
		if e.Player != player {
			continue
		}
		if e.Type == entity.MatchEventGoal || e.Type == entity.MatchEventPenalty {
			n++
		}
	}
	return n
}

func isGoalLike(eventType string) bool {
	return eventType == entity.MatchEventGoal ||
		eventType == entity.MatchEventPenalty ||
		eventType == entity.MatchEventCSC
}

// ParseInterval разбирает тип вида "interval_<start>_<end>".
// Границы окна включительные.
func ParseInterval(eventType string) (start, end int, ok bool) {
	const prefix = "interval_"
	if !strings.HasPrefix(eventType, prefix) {
		return 0, 0, false
	}
	parts := strings.Split(strings.TrimPrefix(eventType, prefix), "_")
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	end, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
