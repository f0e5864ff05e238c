package docstore

import (
	"context"

	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/domain/repository"
)

// LeagueRepo реализует repository.LeagueRepository
type LeagueRepo struct {
	store repository.DocumentStore
}

// NewLeagueRepo создаёт новый репозиторий лиг
func NewLeagueRepo(store repository.DocumentStore) *LeagueRepo {
	return &LeagueRepo{store: store}
}

// GetByID возвращает лигу или nil
func (r *LeagueRepo) GetByID(ctx context.Context, id string) (*entity.League, error) {
	doc, err := r.store.FindByID(ctx, repository.CollectionLeagues, id)
	if err != nil || doc == nil {
		return nil, err
	}
	var l entity.League
	if err := fromDocument(doc, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetAll возвращает все лиги
func (r *LeagueRepo) GetAll(ctx context.Context) ([]entity.League, error) {
	docs, err := r.store.Find(ctx, repository.CollectionLeagues, repository.Document{})
	if err != nil {
		return nil, err
	}
	out := make([]entity.League, 0, len(docs))
	for _, doc := range docs {
		var l entity.League
		if err := fromDocument(doc, &l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Create сохраняет новую лигу
func (r *LeagueRepo) Create(ctx context.Context, league *entity.League) (*entity.League, error) {
	doc, err := toDocument(league)
	if err != nil {
		return nil, err
	}
	stored, err := r.store.Create(ctx, repository.CollectionLeagues, doc)
	if err != nil {
		return nil, err
	}
	var out entity.League
	if err := fromDocument(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetMembers перезаписывает список участников; nil, если лига не найдена
func (r *LeagueRepo) SetMembers(ctx context.Context, id string, members []string) (*entity.League, error) {
	stored, err := r.store.Update(ctx, repository.CollectionLeagues, id, repository.Document{"members": members})
	if err != nil || stored == nil {
		return nil, err
	}
	var out entity.League
	if err := fromDocument(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StatsRepo реализует repository.StatsRepository
type StatsRepo struct {
	store repository.DocumentStore
}

// NewStatsRepo создаёт новый репозиторий статистики пользователей
func NewStatsRepo(store repository.DocumentStore) *StatsRepo {
	return &StatsRepo{store: store}
}

// GetByUser возвращает статистику пользователя или nil
func (r *StatsRepo) GetByUser(ctx context.Context, userID string) (*entity.UserStats, error) {
	doc, err := r.store.FindOne(ctx, repository.CollectionUserStats, repository.Document{"userId": userID})
	if err != nil || doc == nil {
		return nil, err
	}
	var s entity.UserStats
	if err := fromDocument(doc, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert создаёт или обновляет статистику пользователя
func (r *StatsRepo) Upsert(ctx context.Context, stats *entity.UserStats) (*entity.UserStats, error) {
	doc, err := toDocument(stats)
	if err != nil {
		return nil, err
	}

	existing, err := r.store.FindOne(ctx, repository.CollectionUserStats, repository.Document{"userId": stats.UserID})
	if err != nil {
		return nil, err
	}

	var stored repository.Document
	if existing == nil {
		stored, err = r.store.Create(ctx, repository.CollectionUserStats, doc)
	} else {
		stored, err = r.store.Update(ctx, repository.CollectionUserStats, existing["id"].(string), doc)
	}
	if err != nil || stored == nil {
		return nil, err
	}

	var out entity.UserStats
	if err := fromDocument(stored, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
