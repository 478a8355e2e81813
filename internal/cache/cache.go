// Package cache предоставляет key-value кэш с TTL.
// Основная реализация - Redis, in-memory используется в тестах
// и как fallback при недоступном Redis.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheUnavailable возвращается когда бэкенд кэша недоступен.
var ErrCacheUnavailable = errors.New("кэш недоступен")

// Cache - интерфейс key-value кэша.
type Cache interface {
	// Get возвращает значение и флаг наличия ключа.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set сохраняет значение; ttl <= 0 означает без истечения.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Incr атомарно инкрементирует счетчик.
	Incr(ctx context.Context, key string) (int64, error)
	// Expire устанавливает TTL существующему ключу.
	Expire(ctx context.Context, key string, ttl time.Duration) error
	// Delete удаляет ключ.
	Delete(ctx context.Context, key string) error
}
