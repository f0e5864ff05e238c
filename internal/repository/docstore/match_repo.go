package docstore

import (
	"context"

	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/domain/repository"
)

// MatchRepo реализует repository.MatchRepository
type MatchRepo struct {
	store repository.DocumentStore
}

// NewMatchRepo создаёт новый репозиторий матчей
func NewMatchRepo(store repository.DocumentStore) *MatchRepo {
	return &MatchRepo{store: store}
}

// GetByID возвращает матч или nil
func (r *MatchRepo) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	doc, err := r.store.FindByID(ctx, repository.CollectionMatches, id)
	if err != nil || doc == nil {
		return nil, err
	}
	var m entity.Match
	if err := fromDocument(doc, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetAll возвращает все матчи
func (r *MatchRepo) GetAll(ctx context.Context) ([]entity.Match, error) {
	docs, err := r.store.Find(ctx, repository.CollectionMatches, repository.Document{})
	if err != nil {
		return nil, err
	}
	out := make([]entity.Match, 0, len(docs))
	for _, doc := range docs {
		var m entity.Match
		if err := fromDocument(doc, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Create сохраняет новый матч
func (r *MatchRepo) Create(ctx context.Context, match *entity.Match) (*entity.Match, error) {
	doc, err := toDocument(match)
	if err != nil {
		return nil, err
	}
	stored, err := r.store.Create(ctx, repository.CollectionMatches, doc)
	if err != nil {
		return nil, err
	}
	var out entity.Match
	if err := fromDocument(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetStatus обновляет статус матча; nil, если матч не найден
func (r *MatchRepo) SetStatus(ctx context.Context, id, status string) (*entity.Match, error) {
	stored, err := r.store.Update(ctx, repository.CollectionMatches, id, repository.Document{"status": status})
	if err != nil || stored == nil {
		return nil, err
	}
	var out entity.Match
	if err := fromDocument(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	store repository.DocumentStore
}

// NewResultRepo создаёт новый репозиторий официальных результатов
func NewResultRepo(store repository.DocumentStore) *ResultRepo {
	return &ResultRepo{store: store}
}

// GetByMatch возвращает результат матча или nil, если он не опубликован
func (r *ResultRepo) GetByMatch(ctx context.Context, matchID string) (*entity.MatchResult, error) {
	doc, err := r.store.FindOne(ctx, repository.CollectionResults, repository.Document{"matchId": matchID})
	if err != nil || doc == nil {
		return nil, err
	}
	var res entity.MatchResult
	if err := fromDocument(doc, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetAll возвращает все опубликованные результаты
func (r *ResultRepo) GetAll(ctx context.Context) ([]entity.MatchResult, error) {
	docs, err := r.store.Find(ctx, repository.CollectionResults, repository.Document{})
	if err != nil {
		return nil, err
	}
	out := make([]entity.MatchResult, 0, len(docs))
	for _, doc := range docs {
		var res entity.MatchResult
		if err := fromDocument(doc, &res); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Upsert публикует результат. На matchId действует инвариант
// уникальности: повторная публикация перезаписывает документ.
func (r *ResultRepo) Upsert(ctx context.Context, result *entity.MatchResult) (*entity.MatchResult, error) {
	doc, err := toDocument(result)
	if err != nil {
		return nil, err
	}

	existing, err := r.store.FindOne(ctx, repository.CollectionResults, repository.Document{"matchId": result.MatchID})
	if err != nil {
		return nil, err
	}

	var stored repository.Document
	if existing == nil {
		stored, err = r.store.Create(ctx, repository.CollectionResults, doc)
	} else {
		stored, err = r.store.Update(ctx, repository.CollectionResults, existing["id"].(string), doc)
	}
	if err != nil || stored == nil {
		return nil, err
	}

	var out entity.MatchResult
	if err := fromDocument(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
