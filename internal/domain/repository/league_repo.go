package repository

import (
	"context"

	"github.com/yourusername/predictions-api/internal/domain/entity"
)

// LeagueRepository определяет методы для работы с лигами
type LeagueRepository interface {
	// GetByID возвращает лигу или nil, если её нет
	GetByID(ctx context.Context, id string) (*entity.League, error)

	// GetAll возвращает все лиги
	GetAll(ctx context.Context) ([]entity.League, error)

	// Create сохраняет новую лигу
	Create(ctx context.Context, league *entity.League) (*entity.League, error)

	// SetMembers перезаписывает список участников лиги;
	// возвращает nil, если лига не найдена
	SetMembers(ctx context.Context, id string, members []string) (*entity.League, error)
}

// StatsRepository определяет методы для работы со статистикой пользователей
type StatsRepository interface {
	// GetByUser возвращает статистику пользователя или nil, если её ещё нет
	GetByUser(ctx context.Context, userID string) (*entity.UserStats, error)

	// Upsert создаёт или обновляет статистику пользователя
	Upsert(ctx context.Context, stats *entity.UserStats) (*entity.UserStats, error)
}
