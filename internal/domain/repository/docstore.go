package repository

import (
	"context"
)

// Имена коллекций документного хранилища
const (
	CollectionPredictions = "predictions"
	CollectionMatches     = "matches"
	CollectionResults     = "results"
	CollectionLeagues     = "leagues"
	CollectionUserStats   = "user_stats"
)

// Document — документ без схемы, как он хранится в коллекции
type Document = map[string]interface{}

// DocumentStore определяет контракт документного хранилища поверх
// именованных коллекций. Две реализации (встроенный JSON-файл и Mongo)
// взаимозаменяемы; бэкенд выбирается ОДИН раз при старте процесса,
// а не на каждый вызов.
//
// Семантика запроса Find: каждый ключ query должен совпасть с полем
// документа нестрогим сравнением (числовая коэрция строк), с одним
// особым случаем — если поле документа массив, а значение запроса
// скаляр, проверяется членство ("contains"). Операторов сравнения нет.
type DocumentStore interface {
	// Find возвращает все документы коллекции, удовлетворяющие запросу
	Find(ctx context.Context, collection string, query Document) ([]Document, error)

	// FindOne возвращает первый подходящий документ или nil, если его нет
	FindOne(ctx context.Context, collection string, query Document) (Document, error)

	// FindByID возвращает документ по идентификатору или nil, если его нет
	FindByID(ctx context.Context, collection, id string) (Document, error)

	// Create присваивает документу новый id и createdAt, сохраняет его
	// и возвращает сохранённый документ со сгенерированными полями
	Create(ctx context.Context, collection string, doc Document) (Document, error)

	// Update неглубоко сливает patch с существующим документом.
	// Возвращает nil (без ошибки), если id не найден.
	Update(ctx context.Context, collection, id string, patch Document) (Document, error)

	// DeleteMany очищает коллекцию целиком (используется для пересева)
	DeleteMany(ctx context.Context, collection string) error

	// InsertMany массово создаёт документы с той же генерацией id/createdAt
	InsertMany(ctx context.Context, collection string, docs []Document) ([]Document, error)
}
