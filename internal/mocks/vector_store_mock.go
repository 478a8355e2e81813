package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"promptgen-server/internal/vectorstore"
)

// MockVectorStore is a mock type for the vectorstore.Store type
type MockVectorStore struct {
	mock.Mock
}

// Insert provides a mock function with given fields: ctx, collection, id, vector, metadata
func (_m *MockVectorStore) Insert(ctx context.Context, collection string, id string, vector []float32, metadata map[string]any) error {
	ret := _m.Called(ctx, collection, id, vector, metadata)
	return ret.Error(0)
}

// Search provides a mock function with given fields: ctx, collection, query, limit, filter
func (_m *MockVectorStore) Search(ctx context.Context, collection string, query []float32, limit int, filter map[string]any) ([]vectorstore.Match, error) {
	ret := _m.Called(ctx, collection, query, limit, filter)

	var r0 []vectorstore.Match
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]vectorstore.Match)
	}

	return r0, ret.Error(1)
}

// Count provides a mock function with given fields: ctx, collection
func (_m *MockVectorStore) Count(ctx context.Context, collection string) (int, error) {
	ret := _m.Called(ctx, collection)

	var r0 int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(int)
	}

	return r0, ret.Error(1)
}

// NewMockVectorStore creates a new instance of MockVectorStore. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockVectorStore(t interface {
	mock.TestingT
	Helper()
}) *MockVectorStore {
	m := &MockVectorStore{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ vectorstore.Store = (*MockVectorStore)(nil)
