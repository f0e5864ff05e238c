// Package docstore содержит типизированные репозитории поверх
// repository.DocumentStore. Репозитории не зависят от конкретного
// бэкенда: им всё равно, файл это или Mongo.
package docstore

import (
	"encoding/json"
	"fmt"

	"github.com/yourusername/predictions-api/internal/domain/repository"
)

// toDocument переводит сущность в документ через JSON.
// Сгенерированные хранилищем поля вычищаются: их назначает бэкенд.
func toDocument(v interface{}) (repository.Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode entity: %w", err)
	}
	var doc repository.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode entity into document: %w", err)
	}
	delete(doc, "id")
	delete(doc, "createdAt")
	delete(doc, "updatedAt")
	return doc, nil
}

// fromDocument декодирует документ в типизированную сущность.
// Кривые числовые поля дают ошибку декодирования на границе, а не панику
// глубже в движке.
func fromDocument(doc repository.Document, dest interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}
