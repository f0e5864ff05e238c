// Package filedb реализует repository.DocumentStore поверх одного
// JSON-файла. Это бережное key-document хранилище для работы без внешней
// базы: каждая запись перезаписывает файл целиком (временный файл +
// rename). Претензий на полноценную БД нет.
package filedb

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/predictions-api/internal/domain/repository"
)

// Store реализует repository.DocumentStore на JSON-файле
type Store struct {
	mu          sync.RWMutex
	path        string
	collections map[string][]repository.Document
}

// NewStore открывает хранилище по пути path, читая существующий файл,
// если он есть
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:        path,
		collections: make(map[string][]repository.Document),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[FileDB] Файл %s не найден, будет создано пустое хранилище", path)
			return s, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.collections); err != nil {
			return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
		}
	}
	return s, nil
}

// Find возвращает документы коллекции, удовлетворяющие запросу
func (s *Store) Find(ctx context.Context, collection string, query repository.Document) ([]repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []repository.Document
	for _, doc := range s.collections[collection] {
		if matchesQuery(doc, query) {
			out = append(out, copyDocument(doc))
		}
	}
	return out, nil
}

// FindOne возвращает первый подходящий документ или nil
func (s *Store) FindOne(ctx context.Context, collection string, query repository.Document) (repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if matchesQuery(doc, query) {
			return copyDocument(doc), nil
		}
	}
	return nil, nil
}

// FindByID возвращает документ по идентификатору или nil
func (s *Store) FindByID(ctx context.Context, collection, id string) (repository.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if doc := s.findByID(collection, id); doc != nil {
		return copyDocument(doc), nil
	}
	return nil, nil
}

// Create присваивает документу id и createdAt, сохраняет и возвращает его
func (s *Store) Create(ctx context.Context, collection string, doc repository.Document) (repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.newDocument(doc)
	s.collections[collection] = append(s.collections[collection], stored)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return copyDocument(stored), nil
}

// Update неглубоко сливает patch с документом; nil, если id не найден
func (s *Store) Update(ctx context.Context, collection, id string, patch repository.Document) (repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findByID(collection, id)
	if doc == nil {
		return nil, nil
	}
	for k, v := range patch {
		if k == "id" || k == "createdAt" {
			continue // сгенерированные поля не перезаписываются патчем
		}
		doc[k] = v
	}
	doc["updatedAt"] = time.Now().UTC().Format(time.RFC3339Nano)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return copyDocument(doc), nil
}

// DeleteMany очищает коллекцию целиком
func (s *Store) DeleteMany(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections, collection)
	return s.persist()
}

// InsertMany массово создаёт документы
func (s *Store) InsertMany(ctx context.Context, collection string, docs []repository.Document) ([]repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]repository.Document, 0, len(docs))
	for _, doc := range docs {
		stored := s.newDocument(doc)
		s.collections[collection] = append(s.collections[collection], stored)
		out = append(out, copyDocument(stored))
	}
	if err := s.persist(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) findByID(collection, id string) repository.Document {
	for _, doc := range s.collections[collection] {
		if docID, ok := doc["id"].(string); ok && docID == id {
			return doc
		}
	}
	return nil
}

func (s *Store) newDocument(doc repository.Document) repository.Document {
	stored := copyDocument(doc)
	stored["id"] = uuid.New().String()
	stored["createdAt"] = time.Now().UTC().Format(time.RFC3339Nano)
	return stored
}

// persist атомарно перезаписывает файл хранилища.
// Вызывается только под мьютексом записи.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.collections, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// copyDocument делает глубокую копию документа через JSON,
// чтобы вызывающая сторона не держала ссылок на внутреннее состояние
func copyDocument(doc repository.Document) repository.Document {
	data, err := json.Marshal(doc)
	if err != nil {
		// Документы приходят из JSON и всегда сериализуемы
		return repository.Document{}
	}
	var out repository.Document
	if err := json.Unmarshal(data, &out); err != nil {
		return repository.Document{}
	}
	return out
}
