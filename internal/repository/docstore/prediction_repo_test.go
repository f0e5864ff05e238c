package docstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/predictions-api/internal/domain/entity"
	"github.com/yourusername/predictions-api/internal/repository/filedb"
)

// Типизированные репозитории гоняются поверх встроенного бэкенда:
// контракт DocumentStore один для обеих реализаций.

func newTestPredictionRepo(t *testing.T) *PredictionRepo {
	t.Helper()
	store, err := filedb.NewStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	return NewPredictionRepo(store)
}

func TestPredictionRepo_UpsertCreatesThenUpdates(t *testing.T) {
	repo := newTestPredictionRepo(t)
	ctx := context.Background()

	created, err := repo.Upsert(ctx, &entity.Prediction{
		UserID:        "u1",
		MatchID:       "m1",
		WydadScore:    2,
		OpponentScore: 0,
		Result:        entity.ResultWin,
		Scorers:       []string{"X"},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 2, created.WydadScore)

	// Повторная отправка обновляет документ на месте, а не добавляет новый
	updated, err := repo.Upsert(ctx, &entity.Prediction{
		UserID:        "u1",
		MatchID:       "m1",
		WydadScore:    1,
		OpponentScore: 1,
		Result:        entity.ResultDraw,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID, "upsert не должен менять идентификатор")
	assert.Equal(t, 1, updated.WydadScore)

	all, err := repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 1, "на пару (пользователь, матч) один документ")
}

func TestPredictionRepo_GetByUserAndMatchMiss(t *testing.T) {
	repo := newTestPredictionRepo(t)

	p, err := repo.GetByUserAndMatch(context.Background(), "ghost", "m1")

	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPredictionRepo_GetByMatch(t *testing.T) {
	repo := newTestPredictionRepo(t)
	ctx := context.Background()

	for _, userID := range []string{"u1", "u2"} {
		_, err := repo.Upsert(ctx, &entity.Prediction{UserID: userID, MatchID: "m1", WydadScore: 1})
		require.NoError(t, err)
	}
	_, err := repo.Upsert(ctx, &entity.Prediction{UserID: "u1", MatchID: "m2", WydadScore: 3})
	require.NoError(t, err)

	preds, err := repo.GetByMatch(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, preds, 2)
}

func TestPredictionRepo_ResubmitWithoutAdvancedEventsDropsThem(t *testing.T) {
	repo := newTestPredictionRepo(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, &entity.Prediction{
		UserID:     "u1",
		MatchID:    "m1",
		WydadScore: 3,
		Scorers:    []string{"X"},
		AdvancedEvents: []entity.AdvancedEvent{
			{Type: entity.EventHatTrick, Player: "X"},
		},
	})
	require.NoError(t, err)

	// Пользователь передумал и убрал дополнительные рынки: после
	// повторной отправки в документе их быть не должно
	_, err = repo.Upsert(ctx, &entity.Prediction{
		UserID:     "u1",
		MatchID:    "m1",
		WydadScore: 1,
	})
	require.NoError(t, err)

	stored, err := repo.GetByUserAndMatch(ctx, "u1", "m1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Empty(t, stored.AdvancedEvents, "убранные рынки не должны пережить повторную отправку")
	assert.Empty(t, stored.Scorers)
}

func TestResultRepo_UpsertIsIdempotentPerMatch(t *testing.T) {
	store, err := filedb.NewStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	repo := NewResultRepo(store)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, &entity.MatchResult{MatchID: "m1", WydadScore: 1, OpponentScore: 0})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, &entity.MatchResult{MatchID: "m1", WydadScore: 2, OpponentScore: 0})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "повторная публикация перезаписывает документ")
	assert.Equal(t, 2, second.WydadScore)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestResultRepo_RepublishOverwritesRetractedEvents(t *testing.T) {
	store, err := filedb.NewStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	repo := NewResultRepo(store)
	ctx := context.Background()

	_, err = repo.Upsert(ctx, &entity.MatchResult{
		MatchID:       "m1",
		WydadScore:    1,
		OpponentScore: 0,
		Scorers:       []string{"X"},
		Events: []entity.MatchEvent{
			{Type: entity.MatchEventGoal, Player: "X", Minute: 10, Order: 1},
		},
	})
	require.NoError(t, err)

	// Гол отменён после проверки VAR: исправленная публикация без
	// событий должна перезаписать документ целиком, а не слиться с ним
	republished, err := repo.Upsert(ctx, &entity.MatchResult{
		MatchID:       "m1",
		WydadScore:    0,
		OpponentScore: 0,
	})
	require.NoError(t, err)
	assert.Empty(t, republished.Events)

	stored, err := repo.GetByMatch(ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 0, stored.WydadScore)
	assert.Empty(t, stored.Events, "отозванные события не должны пережить перепубликацию")
	assert.Empty(t, stored.Scorers)
}
