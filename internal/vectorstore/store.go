package vectorstore

import (
	"context"
	"errors"
)

// ErrCollectionNotFound возвращается при поиске в несуществующей коллекции.
var ErrCollectionNotFound = errors.New("vectorstore: collection not found")

// Match - результат векторного поиска.
type Match struct {
	ID       string
	Score    float64
	Metadata map[string]any
}

// Store хранит эмбеддинги по коллекциям и ищет ближайшие по косинусной близости.
type Store interface {
	Insert(ctx context.Context, collection, id string, vector []float32, metadata map[string]any) error
	Search(ctx context.Context, collection string, query []float32, limit int, filter map[string]any) ([]Match, error)
	Count(ctx context.Context, collection string) (int, error)
}
