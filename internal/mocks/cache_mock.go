package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"promptgen-server/internal/cache"
)

// MockCache is a mock type for the cache.Cache type
type MockCache struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, key
func (_m *MockCache) Get(ctx context.Context, key string) (string, bool, error) {
	ret := _m.Called(ctx, key)

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 bool
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1, ret.Error(2)
}

// Set provides a mock function with given fields: ctx, key, value, ttl
func (_m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	ret := _m.Called(ctx, key, value, ttl)
	return ret.Error(0)
}

// Incr provides a mock function with given fields: ctx, key
func (_m *MockCache) Incr(ctx context.Context, key string) (int64, error) {
	ret := _m.Called(ctx, key)

	var r0 int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

// Expire provides a mock function with given fields: ctx, key, ttl
func (_m *MockCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	ret := _m.Called(ctx, key, ttl)
	return ret.Error(0)
}

// Delete provides a mock function with given fields: ctx, key
func (_m *MockCache) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}

// NewMockCache creates a new instance of MockCache. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockCache(t interface {
	mock.TestingT
	Helper()
}) *MockCache {
	m := &MockCache{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ cache.Cache = (*MockCache)(nil)
