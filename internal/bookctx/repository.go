// Package bookctx хранит контексты книг: durable-репозиторий плюс
// Redis-кэш, мутации сериализуются помьютексно на книгу.
package bookctx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"promptgen-server/internal/models"
)

// ErrNotFound возвращается когда контекст книги отсутствует в хранилище.
var ErrNotFound = errors.New("контекст книги не найден")

// Repository - durable-хранилище контекстов книг.
type Repository interface {
	// Get возвращает контекст книги или ErrNotFound.
	Get(ctx context.Context, bookID string) (*models.BookContext, error)
	// Save создает или перезаписывает контекст книги.
	Save(ctx context.Context, bctx *models.BookContext) error
}

// MemoryRepository - реализация в памяти для тестов и локального запуска.
// Хранит сериализованный JSON, чтобы путь загрузки совпадал с durable
// реализацией.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, bookID string) (*models.BookContext, error) {
	r.mu.RLock()
	raw, ok := r.data[bookID]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	var bctx models.BookContext
	if err := json.Unmarshal(raw, &bctx); err != nil {
		return nil, fmt.Errorf("десериализация контекста книги %s: %w", bookID, err)
	}
	return &bctx, nil
}

func (r *MemoryRepository) Save(_ context.Context, bctx *models.BookContext) error {
	raw, err := json.Marshal(bctx)
	if err != nil {
		return fmt.Errorf("сериализация контекста книги %s: %w", bctx.BookID, err)
	}

	r.mu.Lock()
	r.data[bctx.BookID] = raw
	r.mu.Unlock()
	return nil
}
