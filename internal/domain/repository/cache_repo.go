package repository

import (
	"time"
)

// CacheRepository определяет методы для работы с кешем (Redis).
// Используется для кеширования рассчитанных рейтингов.
type CacheRepository interface {
	// SetJSON сохраняет структуру в кеше в виде JSON
	SetJSON(key string, value interface{}, expiration time.Duration) error

	// GetJSON читает JSON-значение из кеша в dest
	GetJSON(key string, dest interface{}) error

	// Delete удаляет значение из кеша
	Delete(key string) error
}
