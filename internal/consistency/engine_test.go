package consistency

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"promptgen-server/internal/llm"
	"promptgen-server/internal/mocks"
	"promptgen-server/internal/vectorstore"
)

func TestEnsureConsistency_FirstOccurrenceEstablishesBaseline(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	cacheMock := mocks.NewMockCache(t)
	vectors := mocks.NewMockVectorStore(t)
	engine := NewEngine(llmClient, cacheMock, vectors, zap.NewNop())

	cacheMock.On("Get", mock.Anything, "consistency:book-1:character:Luna").
		Return("", false, nil)
	llmClient.On("Embed", mock.Anything, "Luna").
		Return([]float32{0.1, 0.2}, nil)
	vectors.On("Search", mock.Anything, "consistency_character", mock.Anything, 10, mock.Anything).
		Return(nil, vectorstore.ErrCollectionNotFound)

	llmClient.On("GenerateText", mock.Anything, mock.Anything, "Luna, silver hair, green eyes", llm.Options{JSONMode: true}).
		Return(`{"hair": "silver", "eyes": "green"}`, nil)
	llmClient.On("Embed", mock.Anything, "Luna, silver hair, green eyes").
		Return([]float32{0.3, 0.4}, nil)
	vectors.On("Insert", mock.Anything, "consistency_character", "Luna", []float32{0.3, 0.4}, mock.Anything).
		Return(nil)
	cacheMock.On("Set", mock.Anything, "consistency:book-1:character:Luna", mock.Anything, historyTTL).
		Return(nil)

	result, err := engine.EnsureConsistency(context.Background(), "Luna, silver hair, green eyes", "book-1", "character", "Luna")

	require.NoError(t, err)
	assert.Equal(t, "Luna, silver hair, green eyes", result)
	vectors.AssertCalled(t, "Insert", mock.Anything, "consistency_character", "Luna", []float32{0.3, 0.4}, mock.Anything)
}

func TestEnsureConsistency_CompatiblePromptPassesUnchanged(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	cacheMock := mocks.NewMockCache(t)
	vectors := mocks.NewMockVectorStore(t)
	engine := NewEngine(llmClient, cacheMock, vectors, zap.NewNop())

	history, _ := json.Marshal([]Entry{{
		Prompt:    "Luna, long silver hair",
		Features:  map[string]string{"hair": "long silver hair"},
		Timestamp: time.Now().UTC(),
	}})
	cacheMock.On("Get", mock.Anything, "consistency:book-1:character:Luna").
		Return(string(history), true, nil)

	llmClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, llm.Options{JSONMode: true}).
		Return(`{"hair": "silver hair"}`, nil)
	llmClient.On("Embed", mock.Anything, mock.Anything).
		Return([]float32{0.5, 0.5}, nil)
	vectors.On("Insert", mock.Anything, "consistency_character", mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	cacheMock.On("Set", mock.Anything, mock.Anything, mock.Anything, historyTTL).
		Return(nil)

	result, err := engine.EnsureConsistency(context.Background(), "Luna with silver hair in moonlight", "book-1", "character", "Luna")

	require.NoError(t, err)
	assert.Equal(t, "Luna with silver hair in moonlight", result)
}

func TestEnsureConsistency_ConflictCorrectedThroughLLM(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	cacheMock := mocks.NewMockCache(t)
	vectors := mocks.NewMockVectorStore(t)
	engine := NewEngine(llmClient, cacheMock, vectors, zap.NewNop())

	history, _ := json.Marshal([]Entry{{
		Prompt:   "Luna, long silver hair",
		Features: map[string]string{"hair": "long silver hair"},
	}})
	cacheMock.On("Get", mock.Anything, "consistency:book-1:character:Luna").
		Return(string(history), true, nil)

	llmClient.On("GenerateText", mock.Anything, mock.Anything, "Luna, short red hair", llm.Options{JSONMode: true}).
		Return(`{"hair": "short red bob"}`, nil)
	llmClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, llm.Options{}).
		Return("Luna, long silver hair, standing in moonlight\n", nil)
	llmClient.On("GenerateText", mock.Anything, mock.Anything, "Luna, long silver hair, standing in moonlight", llm.Options{JSONMode: true}).
		Return(`{"hair": "long silver hair"}`, nil)
	llmClient.On("Embed", mock.Anything, mock.Anything).
		Return([]float32{0.5, 0.5}, nil)
	vectors.On("Insert", mock.Anything, "consistency_character", mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	cacheMock.On("Set", mock.Anything, mock.Anything, mock.Anything, historyTTL).
		Return(nil)

	result, err := engine.EnsureConsistency(context.Background(), "Luna, short red hair", "book-1", "character", "Luna")

	require.NoError(t, err)
	assert.Equal(t, "Luna, long silver hair, standing in moonlight", result)
}

func TestEnsureConsistency_CorrectionFailurePropagates(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	cacheMock := mocks.NewMockCache(t)
	vectors := mocks.NewMockVectorStore(t)
	engine := NewEngine(llmClient, cacheMock, vectors, zap.NewNop())

	history, _ := json.Marshal([]Entry{{
		Prompt:   "Luna, long silver hair",
		Features: map[string]string{"hair": "long silver hair"},
	}})
	cacheMock.On("Get", mock.Anything, "consistency:book-1:character:Luna").
		Return(string(history), true, nil)

	llmClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, llm.Options{JSONMode: true}).
		Return(`{"hair": "short red bob"}`, nil)
	llmClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, llm.Options{}).
		Return("", errors.New("api down"))

	_, err := engine.EnsureConsistency(context.Background(), "Luna, short red hair", "book-1", "character", "Luna")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "коррекция промпта")
}

func TestEnsureConsistency_MalformedFeaturesDegradeToBaseline(t *testing.T) {
	llmClient := mocks.NewMockLLMClient(t)
	cacheMock := mocks.NewMockCache(t)
	vectors := mocks.NewMockVectorStore(t)
	engine := NewEngine(llmClient, cacheMock, vectors, zap.NewNop())

	cacheMock.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	llmClient.On("Embed", mock.Anything, mock.Anything).Return([]float32{0.1}, nil)
	vectors.On("Search", mock.Anything, mock.Anything, mock.Anything, 10, mock.Anything).
		Return(nil, vectorstore.ErrCollectionNotFound)
	llmClient.On("GenerateText", mock.Anything, mock.Anything, mock.Anything, llm.Options{JSONMode: true}).
		Return("definitely not json", nil)
	vectors.On("Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	cacheMock.On("Set", mock.Anything, mock.Anything, mock.Anything, historyTTL).Return(nil)

	result, err := engine.EnsureConsistency(context.Background(), "an old oak door", "book-1", "object", "door")

	require.NoError(t, err)
	assert.Equal(t, "an old oak door", result)
}

func TestCompatible(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
		want bool
	}{
		{"точное совпадение без учета регистра", "Silver Hair", "silver hair", true},
		{"перекрытие токенов выше порога", "long silver hair", "silver hair", true},
		{"разные значения", "short red bob", "long silver hair", false},
		{"обе строки пустые", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, compatible(tc.a, tc.b))
		})
	}
}

func TestEntryFromMetadata(t *testing.T) {
	entry := entryFromMetadata(map[string]any{
		"prompt":    "Luna, silver hair",
		"features":  map[string]any{"hair": "silver", "count": 3},
		"timestamp": "2026-01-15T10:00:00Z",
	})

	assert.Equal(t, "Luna, silver hair", entry.Prompt)
	assert.Equal(t, map[string]string{"hair": "silver"}, entry.Features)
	assert.Equal(t, 2026, entry.Timestamp.Year())
}
