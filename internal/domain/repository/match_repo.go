package repository

import (
	"context"

	"github.com/yourusername/predictions-api/internal/domain/entity"
)

// MatchRepository определяет методы для работы с календарём матчей
type MatchRepository interface {
	// GetByID возвращает матч или nil, если его нет
	GetByID(ctx context.Context, id string) (*entity.Match, error)

	// GetAll возвращает все матчи
	GetAll(ctx context.Context) ([]entity.Match, error)

	// Create сохраняет новый матч
	Create(ctx context.Context, match *entity.Match) (*entity.Match, error)

	// SetStatus обновляет статус матча; возвращает nil, если матч не найден
	SetStatus(ctx context.Context, id, status string) (*entity.Match, error)
}

// ResultRepository определяет методы для работы с официальными результатами
type ResultRepository interface {
	// GetByMatch возвращает результат матча или nil, если он не опубликован
	GetByMatch(ctx context.Context, matchID string) (*entity.MatchResult, error)

	// GetAll возвращает все опубликованные результаты
	GetAll(ctx context.Context) ([]entity.MatchResult, error)

	// Upsert публикует результат: создаёт документ или идемпотентно
	// перезаписывает существующий для того же матча
	Upsert(ctx context.Context, result *entity.MatchResult) (*entity.MatchResult, error)
}
