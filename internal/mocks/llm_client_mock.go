package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"promptgen-server/internal/llm"
)

// MockLLMClient is a mock type for the llm.Client type
type MockLLMClient struct {
	mock.Mock
}

// GenerateText provides a mock function with given fields: ctx, systemPrompt, userPrompt, opts
func (_m *MockLLMClient) GenerateText(ctx context.Context, systemPrompt string, userPrompt string, opts llm.Options) (string, error) {
	ret := _m.Called(ctx, systemPrompt, userPrompt, opts)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, string, llm.Options) string); ok {
		r0 = rf(ctx, systemPrompt, userPrompt, opts)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string, llm.Options) error); ok {
		r1 = rf(ctx, systemPrompt, userPrompt, opts)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Embed provides a mock function with given fields: ctx, text
func (_m *MockLLMClient) Embed(ctx context.Context, text string) ([]float32, error) {
	ret := _m.Called(ctx, text)

	var r0 []float32
	if rf, ok := ret.Get(0).(func(context.Context, string) []float32); ok {
		r0 = rf(ctx, text)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]float32)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, text)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockLLMClient creates a new instance of MockLLMClient. It also registers a testing interface on the mock.
// The first argument is typically a *testing.T value.
func NewMockLLMClient(t interface {
	mock.TestingT
	Helper()
}) *MockLLMClient {
	m := &MockLLMClient{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ llm.Client = (*MockLLMClient)(nil)
