package docstore

import (
	"context"

	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/domain/repository"
)

// PredictionRepo реализует repository.PredictionRepository
type PredictionRepo struct {
	store repository.DocumentStore
}

// NewPredictionRepo создаёт новый репозиторий прогнозов
func NewPredictionRepo(store repository.DocumentStore) *PredictionRepo {
	return &PredictionRepo{store: store}
}

// GetByUserAndMatch возвращает прогноз пары (пользователь, матч) или nil
func (r *PredictionRepo) GetByUserAndMatch(ctx context.Context, userID, matchID string) (*entity.Prediction, error) {
	doc, err := r.store.FindOne(ctx, repository.CollectionPredictions, repository.Document{
		"userId":  userID,
		"matchId": matchID,
	})
	if err != nil || doc == nil {
		return nil, err
	}
	var p entity.Prediction
	if err := fromDocument(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByMatch возвращает все прогнозы на матч
func (r *PredictionRepo) GetByMatch(ctx context.Context, matchID string) ([]entity.Prediction, error) {
	return r.find(ctx, repository.Document{"matchId": matchID})
}

// GetByUser возвращает все прогнозы пользователя
func (r *PredictionRepo) GetByUser(ctx context.Context, userID string) ([]entity.Prediction, error) {
	return r.find(ctx, repository.Document{"userId": userID})
}

// GetAll возвращает все прогнозы
func (r *PredictionRepo) GetAll(ctx context.Context) ([]entity.Prediction, error) {
	return r.find(ctx, repository.Document{})
}

// Upsert создаёт прогноз или обновляет существующий той же пары
// (пользователь, матч) — повторная отправка не плодит документы
func (r *PredictionRepo) Upsert(ctx context.Context, prediction *entity.Prediction) (*entity.Prediction, error) {
	doc, err := toDocument(prediction)
	if err != nil {
		return nil, err
	}

	existing, err := r.store.FindOne(ctx, repository.CollectionPredictions, repository.Document{
		"userId":  prediction.UserID,
		"matchId": prediction.MatchID,
	})
	if err != nil {
		return nil, err
	}

	var stored repository.Document
	if existing == nil {
		stored, err = r.store.Create(ctx, repository.CollectionPredictions, doc)
	} else {
		stored, err = r.store.Update(ctx, repository.CollectionPredictions, existing["id"].(string), doc)
	}
	if err != nil || stored == nil {
		return nil, err
	}

	var out entity.Prediction
	if err := fromDocument(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PredictionRepo) find(ctx context.Context, query repository.Document) ([]entity.Prediction, error) {
	docs, err := r.store.Find(ctx, repository.CollectionPredictions, query)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Prediction, 0, len(docs))
	for _, doc := range docs {
		var p entity.Prediction
		if err := fromDocument(doc, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
