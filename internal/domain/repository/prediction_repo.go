package repository

import (
	"context"

	"github.com/yourusername/predictions-api/internal/domain/entity"
)

// PredictionRepository определяет методы для работы с прогнозами
type PredictionRepository interface {
	// GetByUserAndMatch возвращает прогноз пары (пользователь, матч)
	// или nil, если прогноза нет
	GetByUserAndMatch(ctx context.Context, userID, matchID string) (*entity.Prediction, error)

	// GetByMatch возвращает все прогнозы на матч
	GetByMatch(ctx context.Context, matchID string) ([]entity.Prediction, error)

	// GetByUser возвращает все прогнозы пользователя
	GetByUser(ctx context.Context, userID string) ([]entity.Prediction, error)

	// GetAll возвращает все прогнозы (для рейтингов)
	GetAll(ctx context.Context) ([]entity.Prediction, error)

	// Upsert создаёт прогноз или обновляет существующий для той же
	// пары (пользователь, матч)
	Upsert(ctx context.Context, prediction *entity.Prediction) (*entity.Prediction, error)
}
