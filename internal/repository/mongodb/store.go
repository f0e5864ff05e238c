// Package mongodb реализует repository.DocumentStore поверх удалённой
// документной базы MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yourusername/predictions-api/internal/domain/repository"
)

// Store реализует repository.DocumentStore на MongoDB
type Store struct {
	db *mongo.Database
}

// NewStore создаёт хранилище поверх уже открытой базы
func NewStore(db *mongo.Database) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("mongo database cannot be nil for Store")
	}
	return &Store{db: db}, nil
}

// Find возвращает документы коллекции, удовлетворяющие запросу.
// Семантика "поле-массив содержит скаляр" совпадает со встроенным
// бэкендом: равенство Mongo на поле-массиве само проверяет членство.
func (s *Store) Find(ctx context.Context, collection string, query repository.Document) ([]repository.Document, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, toFilter(query))
	if err != nil {
		return nil, fmt.Errorf("error fetching documents from %s: %w", collection, err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("error unpacking cursor for %s: %w", collection, err)
	}

	out := make([]repository.Document, 0, len(raw))
	for _, doc := range raw {
		out = append(out, fromBSON(doc))
	}
	return out, nil
}

// FindOne возвращает первый подходящий документ или nil
func (s *Store) FindOne(ctx context.Context, collection string, query repository.Document) (repository.Document, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, toFilter(query)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching document from %s: %w", collection, err)
	}
	return fromBSON(doc), nil
}

// FindByID возвращает документ по идентификатору или nil
func (s *Store) FindByID(ctx context.Context, collection, id string) (repository.Document, error) {
	return s.FindOne(ctx, collection, repository.Document{"id": id})
}

// Create присваивает документу id и createdAt, сохраняет и возвращает его
func (s *Store) Create(ctx context.Context, collection string, doc repository.Document) (repository.Document, error) {
	stored := withGeneratedFields(doc)
	if _, err := s.db.Collection(collection).InsertOne(ctx, toBSON(stored)); err != nil {
		return nil, fmt.Errorf("failed to insert document into %s: %w", collection, err)
	}
	return stored, nil
}

// Update неглубоко сливает patch с документом; nil, если id не найден
func (s *Store) Update(ctx context.Context, collection, id string, patch repository.Document) (repository.Document, error) {
	set := bson.M{"updatedAt": time.Now().UTC().Format(time.RFC3339Nano)}
	for k, v := range patch {
		if k == "id" || k == "createdAt" {
			continue // сгенерированные поля не перезаписываются патчем
		}
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated bson.M
	err := s.db.Collection(collection).
		FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).
		Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update document in %s: %w", collection, err)
	}
	return fromBSON(updated), nil
}

// DeleteMany очищает коллекцию целиком
func (s *Store) DeleteMany(ctx context.Context, collection string) error {
	if _, err := s.db.Collection(collection).DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear collection %s: %w", collection, err)
	}
	return nil
}

// InsertMany массово создаёт документы
func (s *Store) InsertMany(ctx context.Context, collection string, docs []repository.Document) ([]repository.Document, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	stored := make([]repository.Document, 0, len(docs))
	payload := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		d := withGeneratedFields(doc)
		stored = append(stored, d)
		payload = append(payload, toBSON(d))
	}
	if _, err := s.db.Collection(collection).InsertMany(ctx, payload); err != nil {
		return nil, fmt.Errorf("failed to insert documents into %s: %w", collection, err)
	}
	return stored, nil
}

func withGeneratedFields(doc repository.Document) repository.Document {
	out := make(repository.Document, len(doc)+2)
	for k, v := range doc {
		out[k] = v
	}
	out["id"] = uuid.New().String()
	out["createdAt"] = time.Now().UTC().Format(time.RFC3339Nano)
	return out
}

func toFilter(query repository.Document) bson.M {
	filter := bson.M{}
	for k, v := range query {
		filter[k] = v
	}
	return filter
}

func toBSON(doc repository.Document) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	return out
}

// fromBSON убирает служебный _id Mongo: наружу документ выходит только
// с прикладным полем id, как и во встроенном бэкенде
func fromBSON(doc bson.M) repository.Document {
	out := make(repository.Document, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}
	return out
}
