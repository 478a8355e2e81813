package vectorstore

import (
	"context"
	"math"
	"sort"
	"sync"
)

type record struct {
	id       string
	vector   []float32
	metadata map[string]any
}

// MemoryStore - in-memory реализация Store. Коллекции создаются лениво
// при первой вставке.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]record
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]record)}
}

func (s *MemoryStore) Insert(_ context.Context, collection, id string, vector []float32, metadata map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vec := make([]float32, len(vector))
	copy(vec, vector)

	records := s.collections[collection]
	for i := range records {
		if records[i].id == id {
			records[i].vector = vec
			records[i].metadata = metadata
			return nil
		}
	}
	s.collections[collection] = append(records, record{id: id, vector: vec, metadata: metadata})
	return nil
}

func (s *MemoryStore) Search(_ context.Context, collection string, query []float32, limit int, filter map[string]any) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.collections[collection]
	if !ok {
		return nil, ErrCollectionNotFound
	}

	matches := make([]Match, 0, len(records))
	for _, rec := range records {
		if !matchesFilter(rec.metadata, filter) {
			continue
		}
		matches = append(matches, Match{
			ID:       rec.id,
			Score:    cosineSimilarity(query, rec.vector),
			Metadata: rec.metadata,
		})
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (s *MemoryStore) Count(_ context.Context, collection string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection]), nil
}

func matchesFilter(metadata, filter map[string]any) bool {
	for key, want := range filter {
		got, ok := metadata[key]
		if !ok || got != want {
			return false
		}
	}
	return true
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
